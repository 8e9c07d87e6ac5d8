package cli

var SeedWorkspace = seedWorkspace
