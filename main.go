package main

import "finance-guide/cmd"

func main() {
	cmd.Execute()
}
