package main

import "github.com/customer-admin/customer-admin/cmd"

func main() {
	cmd.Execute()
}
