package report

import (
	"flag"
	"fmt"
	"io"

	"github.com/wildstyl3r/roots/internal/utils"
)

const (
	ErrorLogOutput = "Error log"
	TraceOutput    = "Trace"
	SummaryOutput  = "Summary"
)

type Output struct {
	saveFlag   *bool
	fileSuffix string
}

// Flags selects which outputs a run produces.
type Flags struct {
	all        *bool
	quiet      *bool
	makeDir    *bool
	outputs    map[string]Output
	outputPath string
}

func NewFlags(fs *flag.FlagSet) Flags {
	return Flags{
		all:     fs.Bool("all", false, "save every available output"),
		quiet:   fs.Bool("quiet", false, "do not print iteration tables"),
		makeDir: fs.Bool("dir", false, "save traces into a subdirectory instead of suffixed files"),
		outputs: map[string]Output{
			ErrorLogOutput: {
				saveFlag:   fs.Bool("log", true, "save approximate error log"),
				fileSuffix: "errors",
			},
			TraceOutput: {
				saveFlag:   fs.Bool("trace", false, "save full iteration trace per run"),
				fileSuffix: "trace",
			},
			SummaryOutput: {
				saveFlag:   fs.Bool("summary", true, "save outcome summary"),
				fileSuffix: "summary",
			},
		},
	}
}

func (df *Flags) SetOutputPath(path string) {
	if path != "" && path[len(path)-1] != '/' {
		df.outputPath = path + "/"
	} else {
		df.outputPath = path
	}
}

func (df *Flags) GetOutputPath() string {
	return df.outputPath
}

func (df *Flags) Enabled(name string) bool {
	output, ok := df.outputs[name]
	if !ok {
		return false
	}
	return *output.saveFlag || *df.all
}

func (df *Flags) Quiet() bool {
	return *df.quiet
}

// Open builds the writers the flags ask for. Files are named after name.
// The returned Summary is always part of the Multi.
func (df *Flags) Open(stdout io.Writer, name string) (Multi, *Summary, error) {
	summary := NewSummary()
	writers := Multi{summary}
	if !df.Quiet() {
		writers = append(writers, NewConsole(stdout))
	}
	if df.Enabled(ErrorLogOutput) {
		file, err := utils.OpenFile(false, df.outputPath, df.outputs[ErrorLogOutput].fileSuffix, name)
		if err != nil {
			writers.Close()
			return nil, nil, fmt.Errorf("unable to open error log: %w", err)
		}
		writers = append(writers, NewErrorLog(file))
	}
	if df.Enabled(TraceOutput) {
		writers = append(writers, NewTrace(df.outputPath, *df.makeDir, df.outputs[TraceOutput].fileSuffix))
	}
	return writers, summary, nil
}

// SaveSummary writes the summary file if it is enabled.
func (df *Flags) SaveSummary(summary *Summary, name string) error {
	if !df.Enabled(SummaryOutput) {
		return nil
	}
	return summary.Save(df.outputPath, false, df.outputs[SummaryOutput].fileSuffix, name)
}
