package cli

// RunRender exposes runRender for tests
var RunRender = runRender
