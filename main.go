package main

import "github.com/nyirog/nyirog-site/cmd"

func main() {
	cmd.Execute()
}
