package main

import "github.com/jsphweid/smart/cmd"

func main() {
	cmd.Execute()
}
