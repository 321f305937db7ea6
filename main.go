package main

import "schedfinder/cmd"

func main() {
	cmd.Execute()
}
