package main

import "github.com/kallmejoe/Pulseyapp/cmd/pulse"

func main() {
	pulse.Execute()
}
