package main

import (
	"github.com/tradethiopiainstructor01-web/tradethiopia-sub004/cmd"
)

func main() {
	cmd.Execute()
}
