package main

import "github.com/termsweeper/termsweeper/cmd"

func main() {
	cmd.Execute()
}
