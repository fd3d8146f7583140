package main

import (
	capcmd "github.com/capsmith/capsmith/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	capcmd.SetVersionInfo(version, commit)
	capcmd.Execute()
}
