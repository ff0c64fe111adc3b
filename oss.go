package main

import "github.com/vip30/aliyun-oss/cmd"

// We structure the oss command line tool as a single executable using the
// subcommand pattern (http://blog.ralch.com/tutorial/golang-subcommands/)
// as is common for many cloud utilities.
func main() {
	cmd.Execute()
}
