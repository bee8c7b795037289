package ops

var CLI struct {
	Get     bool     `help:"Report physical dimensions; opens files read-only" xor:"mode"`
	Set     string   `help:"Patch physical dimensions in millimeters, in place" placeholder:"WIDTHxHEIGHT" xor:"mode"`
	Files   []string `arg:"" name:"file" help:"EDID blob; use '-' for stdin (patched output goes to stdout)"`
	Backup  bool     `help:"Save the original blob as <file>.orig.lz4 before patching" short:"b"`
	Force   bool     `help:"Force overwrite of an existing backup" short:"f"`
	Table   bool     `help:"Render the report as a table" short:"t"`
	Verbose bool     `help:"Trace visited blocks to stderr" short:"v"`
	MaxExt  int      `help:"Reject blobs declaring more extension blocks" name:"max-extensions" default:"255"`
	Cpus    int      `help:"Files processed in parallel [-1 auto]" default:"-1" short:"c"`
}
