package main

import "github.com/BRIKEV/twd-mcp/cmd"

func main() {
	cmd.Execute()
}
