package main

import "github.com/Josephz007/level-up-progress-tracker/cmd/levelup/root"

func main() {
	root.Execute()
}
