package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/leterax/go-learnopengl/internal/config"
	"github.com/leterax/go-learnopengl/pkg/render/app"
	"github.com/leterax/go-learnopengl/pkg/render/examples"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.FromFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := app.Run(cfg, examples.NewCubemapSkybox()); err != nil {
		log.Fatalf("cubemap-skybox: %v", err)
	}
}
