package main

import "github.com/MoraStok/apareo-con-actualizaciones/cmd"

func main() {
	cmd.Execute()
}
