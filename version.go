package pipelinesetup

// Version is overridden at build time with -ldflags "-X github.com/rnacentral/pipeline-setup.Version=...".
var Version = "0.1.0-dev"
