package main

import "lifeboard/cmd/lb/root"

func main() {
	root.Execute()
}
