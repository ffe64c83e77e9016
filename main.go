package main

import "github.com/Hatemabdelfatah/Simple-Shell-Multi-Processing/cmd"

func main() {
	cmd.Execute()
}
