package main

import (
	"github.com/course-tools/thinkific-downloader/cmd"
)

func main() {
	cmd.Execute()
}
