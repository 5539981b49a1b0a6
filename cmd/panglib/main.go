package main

import "github.com/pangya-tools/panglib/cmd/panglib/cmd"

func main() {
	cmd.Execute()
}
