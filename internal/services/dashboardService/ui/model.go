package ui

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/redjax/csvdash/internal/constants"
	loaderservice "github.com/redjax/csvdash/internal/services/loaderService"
	"github.com/redjax/csvdash/internal/services/pagination"
	queryservice "github.com/redjax/csvdash/internal/services/queryService"
	"github.com/redjax/csvdash/internal/utils/terminal"
)

type queryMode int

const (
	modeFilter queryMode = iota
	modeSample
)

func (q queryMode) String() string {
	if q == modeSample {
		return "Sample Query Mode"
	}
	return "Filter Mode"
}

// TableLoader is the part of the loader the dashboard needs.
type TableLoader interface {
	Tables() []string
	Load(ctx context.Context, table string) loaderservice.LoadResult
}

// Options configures a new dashboard.
type Options struct {
	Loader     TableLoader
	StartTable string
	PageSize   int
	RunDelay   time.Duration
	ExportDir  string
	// Rand seeds sample query generation; nil uses a random seed.
	Rand *rand.Rand
}

// UIModel is the whole dashboard state. Everything shown on screen that is
// not stored here (filtered rows, query text, current page rows) is derived
// from it on demand.
type UIModel struct {
	loader    TableLoader
	runDelay  time.Duration
	exportDir string
	rng       *rand.Rand

	// table selection
	tables     []string
	tableIndex int
	tableName  string

	// loaded data
	table      *loaderservice.Table
	unique     loaderservice.UniqueValues
	loadingCSV bool
	loadSeq    int

	mode queryMode

	// filter mode
	filters        queryservice.ColumnFilters
	activeCol      int
	dropdownOpen   bool
	dropdownCursor int
	badgeCursor    int

	// sample mode
	samples       []string
	sampleIndex   int
	sampleInput   textinput.Model
	editingSample bool

	// results
	resultData   []loaderservice.Row
	pager        pagination.Pager
	loadingQuery bool
	querySeq     int
	errMsg       string
	statusMsg    string

	// widgets
	keys      keyMap
	help      help.Model
	spinner   spinner.Model
	tuiHelper *terminal.ResponsiveTUIHelper
	quitting  bool
}

func NewUIModel(opts Options) UIModel {
	ti := textinput.New()
	ti.Placeholder = "SELECT * FROM table WHERE column = 'value';"
	ti.CharLimit = 1024
	ti.Width = 70
	ti.Blur()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	tables := opts.Loader.Tables()
	tableIndex := 0
	for i, t := range tables {
		if t == opts.StartTable {
			tableIndex = i
			break
		}
	}

	m := UIModel{
		loader:      opts.Loader,
		runDelay:    opts.RunDelay,
		exportDir:   opts.ExportDir,
		rng:         rng,
		tables:      tables,
		tableIndex:  tableIndex,
		mode:        modeFilter,
		filters:     queryservice.ColumnFilters{},
		resultData:  []loaderservice.Row{},
		pager:       pagination.New(opts.PageSize),
		sampleInput: ti,
		keys:        defaultKeyMap(),
		help:        help.New(),
		spinner:     sp,
		tuiHelper:   terminal.NewResponsiveTUIHelper(),
		table:       loaderservice.EmptyTable(""),
		unique:      loaderservice.BuildUniqueValues(nil),
	}
	if len(tables) > 0 {
		m.tableName = tables[tableIndex]
		m.table = loaderservice.EmptyTable(m.tableName)
		m.loadingCSV = true
	}
	if m.exportDir == "" {
		m.exportDir = constants.DefaultExportDir
	}
	return m
}

func (m UIModel) Init() tea.Cmd {
	if m.tableName == "" {
		return m.spinner.Tick
	}
	return tea.Batch(m.loadTableCmd(m.loadSeq, m.tableName), m.spinner.Tick)
}
