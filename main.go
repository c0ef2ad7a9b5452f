package main

import "github.com/polysect/polysect/cmd"

func main() {
	cmd.Execute()
}
