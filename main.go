package main

import (
	"github.com/hance08/keasec/cmd"
	"github.com/hance08/keasec/migrations"
)

func main() {
	cmd.Execute(migrations.FS)
}
