package main

import (
	"runtime"
	"strconv"

	"gopkg.in/alecthomas/kingpin.v2"
)

// application holds the parsed flags and the registered commands.
type application struct {
	*kingpin.Application

	Format    *string
	Separator *string
	Encoding  *string
	Natural   *bool
	Validate  *bool
	Empty     *string
	LogLevel  *string
	LogJSON   *bool
	Stats     *bool

	InnerCmd     pairCmd
	OuterCmd     pairCmd
	FilterCmd    pairCmd
	IntersectCmd filesCmd
	CheckCmd     checkCmd
}

// pairCmd is a command over exactly two inputs.
type pairCmd struct {
	*kingpin.CmdClause

	Left  *string
	Right *string
}

// filesCmd is a command over one or more inputs.
type filesCmd struct {
	*kingpin.CmdClause

	Files *[]string
}

type checkCmd struct {
	filesCmd

	Parallel *int
}

const formatAuto = "auto"

func registerCommands(app *kingpin.Application) *application {
	ordjoin := &application{Application: app}

	ordjoin.Format = app.Flag("format", "Record format: auto (by extension), tsv or yaml.").
		Envar("ORDJOIN_FORMAT").Default(formatAuto).Enum(formatAuto, "tsv", "yaml")
	ordjoin.Separator = app.Flag("separator", "Field separator for tsv input and for output.").
		Short('s').Default("\t").String()
	ordjoin.Encoding = app.Flag("encoding", "Input character set label, or auto to detect it.").
		Envar("ORDJOIN_ENCODING").Default("utf-8").String()
	ordjoin.Natural = app.Flag("natural", "Keys are in natural order (file2 before file10) instead of byte order.").Bool()
	ordjoin.Validate = app.Flag("validate", "Fail when an input is not strictly increasing.").Bool()
	ordjoin.Empty = app.Flag("empty", "Placeholder printed by outer for the side that lacks a key.").Default("-").String()
	ordjoin.LogLevel = app.Flag("log-level", "Log level: debug, info, warn or error.").
		Envar("ORDJOIN_LOG_LEVEL").Default("info").String()
	ordjoin.LogJSON = app.Flag("log-json", "Write logs as JSON.").Envar("ORDJOIN_LOG_JSON").Bool()
	ordjoin.Stats = app.Flag("stats", "Log how many records were pulled from each input.").Bool()

	ordjoin.InnerCmd.CmdClause = app.Command("inner", "Print key, left value and right value for keys in both inputs.")
	ordjoin.InnerCmd.Left = ordjoin.InnerCmd.Arg("left", "Left input.").Required().String()
	ordjoin.InnerCmd.Right = ordjoin.InnerCmd.Arg("right", "Right input.").Required().String()

	ordjoin.OuterCmd.CmdClause = app.Command("outer", "Print every key of either input with the value from each side.")
	ordjoin.OuterCmd.Left = ordjoin.OuterCmd.Arg("left", "Left input.").Required().String()
	ordjoin.OuterCmd.Right = ordjoin.OuterCmd.Arg("right", "Right input.").Required().String()

	ordjoin.FilterCmd.CmdClause = app.Command("filter", "Print the records of data whose key is listed in keys.")
	ordjoin.FilterCmd.Left = ordjoin.FilterCmd.Arg("keys", "Input whose keys select records.").Required().String()
	ordjoin.FilterCmd.Right = ordjoin.FilterCmd.Arg("data", "Input to select records from.").Required().String()

	ordjoin.IntersectCmd.CmdClause = app.Command("intersect", "Print the keys present in every input.")
	ordjoin.IntersectCmd.Files = ordjoin.IntersectCmd.Arg("inputs", "Inputs to intersect.").Required().Strings()

	ordjoin.CheckCmd.CmdClause = app.Command("check", "Verify that every input is strictly increasing.")
	ordjoin.CheckCmd.Files = ordjoin.CheckCmd.Arg("inputs", "Inputs to check.").Required().Strings()
	ordjoin.CheckCmd.Parallel = ordjoin.CheckCmd.Flag("parallel", "How many inputs to check at once.").
		Short('j').Default(strconv.Itoa(runtime.NumCPU())).Int()

	return ordjoin
}
