package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontfall"
	"github.com/npillmayer/fontfall/collection"
	"github.com/npillmayer/fontfall/family"
	"github.com/npillmayer/fontfall/fontlang"
	"github.com/npillmayer/fontfall/otface"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fontfall.cli'
func tracer() tracing.Trace {
	return tracing.Select("fontfall.cli")
}

// traceKeys lists every tracer the CLI and the library packages write to.
var traceKeys = []string{
	"fontfall",
	"fontfall.collection",
	"fontfall.family",
	"fontfall.otface",
	"fontfall.lang",
	"fontfall.cli",
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.fontfall.cli": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	langs := flag.String("lang", fontlang.System(), "Requested languages, comma separated")
	flag.Parse()
	setTraceLevel(tracing.LevelError)                 // will set the correct level later
	pterm.Info.Println("Welcome to the fontfall CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("fall > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, reg: fontfall.NewRegistry()}
	//
	// load fonts to use; the first one becomes the default family
	if err := intp.loadFamilies(flag.Args()); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	intp.langs = *langs
	intp.style.LangListID = intp.reg.LanguageListID(*langs)
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		setTraceLevel(tracing.LevelDebug)
	case "Info":
		setTraceLevel(tracing.LevelInfo)
	case "Error":
		setTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	reg      *fontfall.Registry
	coll     *collection.Collection
	families []*family.Family
	style    fontfall.Style
	langs    string
}

func (intp *Intp) String() string {
	if intp == nil || intp.coll == nil {
		return "()"
	}
	return fmt.Sprintf("( style=%s | langs=%s | %d families )",
		intp.style, intp.langs, intp.coll.NumFamilies())
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(op)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	arg  string
}

const (
	// op-codes QUIT and PURGE will not have arguments
	QUIT int = iota
	PURGE
	// op-codes below may have arguments
	HELP
	FAMILIES
	BASE
	COVERAGE
	RESOLVE
	VS
	ITEMIZE
	LANG
	WEIGHT
	ITALIC
	VARIANT
)

var opMap = map[string]int{
	"quit":     QUIT,
	"purge":    PURGE,
	"help":     HELP,
	"families": FAMILIES,
	"base":     BASE,
	"coverage": COVERAGE,
	"resolve":  RESOLVE,
	"vs":       VS,
	"itemize":  ITEMIZE,
	"lang":     LANG,
	"weight":   WEIGHT,
	"italic":   ITALIC,
	"variant":  VARIANT,
}

var opNames = []string{
	"quit",
	"purge",
	"help",
	"families",
	"base",
	"coverage",
	"resolve",
	"vs",
	"itemize",
	"lang",
	"weight",
	"italic",
	"variant",
}

func (intp *Intp) parseCommand(line string) (*Op, error) {
	word, rest, _ := strings.Cut(line, " ")
	code, ok := opMap[strings.ToLower(word)]
	if !ok {
		code = HELP
		rest = ""
	}
	op := &Op{code: code, arg: strings.TrimSpace(rest)}
	if op.arg == "" {
		tracer().Infof("%s", opNames[op.code])
	} else {
		tracer().Infof("%s: argument '%s'", opNames[op.code], op.arg)
	}
	return op, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	PURGE:    purgeOp,
	HELP:     helpOp,
	FAMILIES: familiesOp,
	BASE:     baseOp,
	COVERAGE: coverageOp,
	RESOLVE:  resolveOp,
	VS:       vsOp,
	ITEMIZE:  itemizeOp,
	LANG:     langOp,
	WEIGHT:   weightOp,
	ITALIC:   italicOp,
	VARIANT:  variantOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	tracer().Debugf("op = %v", *op)
	f, ok := commandFn[op.code]
	if !ok {
		pterm.Error.Printf("unknown command code: %d\n", op.code)
		return nil, false
	}
	err, stop = f(intp, op)
	if err != nil {
		pterm.Error.Println(err)
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Style Commands ---------------------------------------------------

func langOp(intp *Intp, op *Op) (error, bool) {
	if op.noArg() {
		tags := intp.reg.LanguageList(intp.style.LangListID)
		pterm.Printf("language list #%d = %v\n", intp.style.LangListID, tags)
		return nil, false
	}
	intp.langs = op.arg
	intp.style.LangListID = intp.reg.LanguageListID(op.arg)
	tracer().Infof("languages set to '%s', list #%d", op.arg, intp.style.LangListID)
	return nil, false
}

func weightOp(intp *Intp, op *Op) (error, bool) {
	if op.noArg() {
		pterm.Printf("weight is %d\n", intp.style.NormalizedWeight())
		return nil, false
	}
	w, err := strconv.Atoi(op.arg)
	if err != nil || w < 100 || w > 900 {
		return errors.New("weight must be a number between 100 and 900"), false
	}
	intp.style.Weight = w
	return nil, false
}

func italicOp(intp *Intp, op *Op) (error, bool) {
	switch strings.ToLower(op.arg) {
	case "":
		intp.style.Italic = !intp.style.Italic
	case "on", "true":
		intp.style.Italic = true
	case "off", "false":
		intp.style.Italic = false
	default:
		return fmt.Errorf("cannot make sense of italic argument '%s'", op.arg), false
	}
	return nil, false
}

func variantOp(intp *Intp, op *Op) (error, bool) {
	switch strings.ToLower(op.arg) {
	case "", "default", "any":
		intp.style.Variant = fontfall.VariantDefault
	case "compact":
		intp.style.Variant = fontfall.VariantCompact
	case "elegant":
		intp.style.Variant = fontfall.VariantElegant
	default:
		return fmt.Errorf("cannot make sense of variant argument '%s'", op.arg), false
	}
	return nil, false
}

// --- Font Loading -----------------------------------------------------

// loadFamilies builds one single-font family per command line argument and
// assembles the collection from them.
func (intp *Intp) loadFamilies(args []string) error {
	if len(args) == 0 {
		return errors.New("no font files given; usage: fallcli [options] font.ttf[=spec] ...")
	}
	fams := make([]fontfall.Family, 0, len(args))
	for _, arg := range args {
		fam, err := loadFamily(arg)
		if err != nil {
			return err
		}
		pterm.Printf("loaded family %s, coverage up to %#x\n",
			fam.Name(), fam.CoverageUpperBound())
		intp.families = append(intp.families, fam)
		fams = append(fams, fam)
	}
	coll, err := collection.New(intp.reg, fams)
	if err != nil {
		return err
	}
	intp.coll = coll
	tracer().Infof("collection #%d with %d families", coll.ID(), coll.NumFamilies())
	return nil
}

// loadFamily loads a font file given as path[=spec], with spec a comma
// separated list of family properties: a language tag, 'emoji', 'compact'
// or 'elegant'.
func loadFamily(arg string) (*family.Family, error) {
	path, spec, _ := strings.Cut(arg, "=")
	cfg := family.Config{}
	for _, entry := range strings.Split(spec, ",") {
		switch entry = strings.TrimSpace(entry); strings.ToLower(entry) {
		case "":
		case "emoji":
			cfg.Emoji = true
		case "compact":
			cfg.Variant = fontfall.VariantCompact
		case "elegant":
			cfg.Variant = fontfall.VariantElegant
		default:
			if tags := fontlang.ParseList(entry); len(tags) > 0 {
				cfg.Language = tags[0]
			}
		}
	}
	src, err := otface.Load(path)
	if err != nil {
		return nil, err
	}
	return otface.NewFamily(src.Fontname(), cfg, src)
}

// ----------------------------------------------------------------------

// familyName finds the name of a family returned by the resolver.
func (intp *Intp) familyName(fam fontfall.Family) string {
	for _, f := range intp.families {
		if fontfall.Family(f) == fam {
			return f.Name()
		}
	}
	return "<unknown>"
}

func (op *Op) noArg() bool {
	if op.arg == "" {
		return true
	}
	return false
}
