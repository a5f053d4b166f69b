package assets

import "embed"

//go:embed css/* img/*
var Assets embed.FS
