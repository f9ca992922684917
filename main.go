package main

import "hackerrank-scraper/cli"

func main() {
	cli.Execute()
}
