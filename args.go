package main

import (
	"time"

	"github.com/handsomefox/modelfetch/api"
)

const defaultDirectory = "src/assets/models/distil-whisper/distil-large-v3.5-ONNX"

type AppArguments struct {
	ModelID   string        `arg:"-m,--model,env:MODELFETCH_MODEL" help:"model repository on the hub" placeholder:"ID"`
	Host      string        `arg:"--host,env:MODELFETCH_HOST" help:"hub that serves {model}/resolve/{revision}/{file}"`
	Revision  string        `arg:"--revision" help:"branch, tag or commit to resolve files from"`
	Directory string        `arg:"-d,--dir" help:"directory to store the files in"`
	Timeout   time.Duration `arg:"--timeout" help:"how long to wait for the hub to start answering, 0 to wait forever"`
	Verbose   bool          `arg:"-v,--verbose" help:"enable debug logging"`
	Files     []string      `arg:"positional" help:"files to fetch instead of the built-in manifest" placeholder:"FILE"`
}

func defaultArgs() AppArguments {
	return AppArguments{
		ModelID:   api.DefaultModelID,
		Host:      api.DefaultHost,
		Revision:  api.DefaultRevision,
		Directory: defaultDirectory,
		Timeout:   api.DefaultHeaderTimeout,
	}
}

func (AppArguments) Description() string {
	return "modelfetch downloads the files of a model repository, skipping the ones already on disk.\n"
}
