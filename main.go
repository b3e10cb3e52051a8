package main

import "github.com/eng618/binairo-csp/cmd"

func main() {
	cmd.Execute()
}
