package main

const (
	flagFile   = "file"
	flagsFile  = "file, f"
	flagDebug  = "debug"
	flagsDebug = "debug, d"

	envFile  = "PIGJOB_FILE"
	envDebug = "PIGJOB_DEBUG"
)
