package main

import commands "github.com/vasily-kirichenko/blog/cmd"

func main() {
	commands.Execute()
}
