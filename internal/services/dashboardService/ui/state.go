package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	loaderservice "github.com/redjax/csvdash/internal/services/loaderService"
	"github.com/redjax/csvdash/internal/services/pagination"
	queryservice "github.com/redjax/csvdash/internal/services/queryService"
)

// filteredRows is the live result of the current filters. In sample mode
// filters do not apply and the whole table is returned.
func (m UIModel) filteredRows() []loaderservice.Row {
	if m.mode == modeSample {
		return m.table.Rows
	}
	return queryservice.ApplyColumnFilters(m.table.Rows, m.filters)
}

// queryText is the generated query in filter mode and the edited sample
// query otherwise.
func (m UIModel) queryText() string {
	if m.mode == modeSample {
		return m.sampleInput.Value()
	}
	return queryservice.GenerateQuery(m.tableName, m.unique, m.filters)
}

func (m UIModel) totalPages() int {
	return m.pager.TotalPages(len(m.resultData))
}

func (m UIModel) pageRows() []loaderservice.Row {
	return pagination.Slice(m.resultData, m.pager.Page, m.pager.Size)
}

func (m UIModel) busy() bool {
	return m.loadingCSV || m.loadingQuery
}

// activeColumn returns the column under the filter cursor.
func (m UIModel) activeColumn() (string, bool) {
	if m.activeCol < 0 || m.activeCol >= len(m.unique.Columns) {
		return "", false
	}
	return m.unique.Columns[m.activeCol], true
}

func (m UIModel) badges() []queryservice.Badge {
	return m.filters.Badges(m.unique.Columns)
}

// selectTable switches to tables[index] and starts loading it. Filters,
// results, pagination and any pending run are discarded.
func (m UIModel) selectTable(index int) (UIModel, tea.Cmd) {
	if len(m.tables) == 0 {
		return m, nil
	}
	index = (index%len(m.tables) + len(m.tables)) % len(m.tables)

	m.tableIndex = index
	m.tableName = m.tables[index]
	m.table = loaderservice.EmptyTable(m.tableName)
	m.unique = loaderservice.BuildUniqueValues(nil)
	m.filters = queryservice.ColumnFilters{}
	m.resultData = []loaderservice.Row{}
	m.pager = m.pager.Reset()
	m.activeCol = 0
	m.dropdownOpen = false
	m.dropdownCursor = 0
	m.badgeCursor = 0
	m.samples = nil
	m.sampleIndex = 0
	m.sampleInput.SetValue("")
	m.editingSample = false
	m.sampleInput.Blur()
	m.errMsg = ""
	m.statusMsg = ""

	// a pending run belongs to the old table
	m.loadingQuery = false
	m.querySeq++

	m.loadingCSV = true
	m.loadSeq++
	log.Debug().Str("table", m.tableName).Int("seq", m.loadSeq).Msg("Loading table")
	return m, m.loadTableCmd(m.loadSeq, m.tableName)
}

// applyLoad installs a finished load if it is still the latest request.
func (m UIModel) applyLoad(msg tableLoadedMsg) UIModel {
	if msg.seq != m.loadSeq || msg.table != m.tableName {
		log.Debug().Str("table", msg.table).Int("seq", msg.seq).Msg("Dropping stale table load")
		return m
	}

	m.loadingCSV = false
	m.table = msg.result.Table
	if m.table == nil {
		m.table = loaderservice.EmptyTable(m.tableName)
	}
	m.unique = msg.result.Unique
	m.resultData = m.table.Rows
	m.pager = m.pager.Reset()
	if msg.result.Err != nil {
		m.statusMsg = fmt.Sprintf("Could not load %s; showing an empty table.", m.tableName)
	}

	m.samples = queryservice.GenerateSampleQueries(m.tableName, m.unique, m.rng)
	m.sampleIndex = 0
	if m.mode == modeSample {
		m.sampleInput.SetValue(m.currentSample())
	}
	return m
}

func (m UIModel) currentSample() string {
	if m.sampleIndex < 0 || m.sampleIndex >= len(m.samples) {
		return ""
	}
	return m.samples[m.sampleIndex]
}

func (m UIModel) toggleMode() UIModel {
	if m.mode == modeFilter {
		m.mode = modeSample
		m.dropdownOpen = false
		if len(m.samples) > 0 {
			m.sampleIndex = 0
			m.sampleInput.SetValue(m.currentSample())
		}
	} else {
		m.mode = modeFilter
		m.editingSample = false
		m.sampleInput.Blur()
	}
	m.errMsg = ""
	return m
}

func (m UIModel) chooseSample(delta int) UIModel {
	if len(m.samples) == 0 {
		return m
	}
	m.sampleIndex = (m.sampleIndex + delta + len(m.samples)) % len(m.samples)
	m.sampleInput.SetValue(m.currentSample())
	return m
}

func (m UIModel) moveColumn(delta int) UIModel {
	n := len(m.unique.Columns)
	if n == 0 {
		return m
	}
	m.activeCol = (m.activeCol + delta + n) % n
	m.dropdownCursor = 0
	return m
}

func (m UIModel) toggleDropdown() UIModel {
	if _, ok := m.activeColumn(); !ok {
		m.dropdownOpen = false
		return m
	}
	m.dropdownOpen = !m.dropdownOpen
	m.dropdownCursor = 0
	return m
}

func (m UIModel) moveDropdown(delta int) UIModel {
	col, ok := m.activeColumn()
	if !ok {
		return m
	}
	n := len(m.unique.Get(col))
	if n == 0 {
		return m
	}
	m.dropdownCursor = (m.dropdownCursor + delta + n) % n
	return m
}

// toggleDropdownValue flips the value under the dropdown cursor.
func (m UIModel) toggleDropdownValue() UIModel {
	col, ok := m.activeColumn()
	if !ok {
		return m
	}
	vals := m.unique.Get(col)
	if m.dropdownCursor < 0 || m.dropdownCursor >= len(vals) {
		return m
	}
	m.filters = m.filters.Toggle(col, vals[m.dropdownCursor])
	return m.clampBadgeCursor()
}

func (m UIModel) nextBadge() UIModel {
	n := len(m.badges())
	if n == 0 {
		m.badgeCursor = 0
		return m
	}
	m.badgeCursor = (m.badgeCursor + 1) % n
	return m
}

// removeBadge drops the filter value under the badge cursor.
func (m UIModel) removeBadge() UIModel {
	badges := m.badges()
	if len(badges) == 0 {
		return m
	}
	b := badges[m.badgeCursor]
	m.filters = m.filters.Remove(b.Column, b.Value)
	return m.clampBadgeCursor()
}

func (m UIModel) clampBadgeCursor() UIModel {
	n := len(m.badges())
	if m.badgeCursor >= n {
		m.badgeCursor = n - 1
	}
	if m.badgeCursor < 0 {
		m.badgeCursor = 0
	}
	return m
}

// startRun disables run/reset and schedules the results for after the run
// delay.
func (m UIModel) startRun() (UIModel, tea.Cmd) {
	if m.busy() {
		return m, nil
	}
	m.errMsg = ""
	m.statusMsg = ""
	m.loadingQuery = true
	m.querySeq++
	return m, runQueryCmd(m.querySeq, m.runDelay)
}

// finishRun applies the pending run. Ticks from a cancelled run are ignored.
func (m UIModel) finishRun(msg queryTickMsg) UIModel {
	if !m.loadingQuery || msg.seq != m.querySeq {
		return m
	}
	m.loadingQuery = false
	runID := uuid.NewString()

	if m.mode == modeFilter {
		m.resultData = m.filteredRows()
		m.pager = m.pager.Reset()
		log.Info().Str("run_id", runID).Str("query", m.queryText()).Int("rows", len(m.resultData)).Msg("Ran filter query")
		return m
	}

	text := m.sampleInput.Value()
	if msg := queryservice.ValidateQuery(text); msg != "" {
		m.errMsg = msg
		return m
	}
	rows, err := queryservice.RunSampleQuery(text, m.tableName, m.table.Rows)
	if err != nil {
		m.errMsg = err.Error()
		return m
	}
	m.resultData = rows
	m.pager = m.pager.Reset()
	log.Info().Str("run_id", runID).Str("query", text).Int("rows", len(rows)).Msg("Ran sample query")
	return m
}

// reset clears filters and errors and shows the whole table again.
func (m UIModel) reset() UIModel {
	if m.busy() {
		return m
	}
	m.filters = queryservice.ColumnFilters{}
	m.badgeCursor = 0
	m.resultData = m.table.Rows
	m.errMsg = ""
	m.statusMsg = ""
	m.pager = m.pager.Reset()
	if m.mode == modeSample && len(m.samples) > 0 {
		m.sampleIndex = 0
		m.sampleInput.SetValue(m.currentSample())
	}
	return m
}

func (m UIModel) nextPage() UIModel {
	m.pager = m.pager.Next(len(m.resultData))
	return m
}

func (m UIModel) prevPage() UIModel {
	m.pager = m.pager.Prev()
	return m
}

func (m UIModel) cyclePageSize() UIModel {
	m.pager = m.pager.CycleSize()
	return m
}

func (m UIModel) startExport() (UIModel, tea.Cmd) {
	if m.loadingCSV || m.tableName == "" {
		return m, nil
	}
	m.statusMsg = "Exporting PDF..."
	return m, exportCmd(m.exportDir, m.tableName, m.table.Columns, m.resultData)
}

func (m UIModel) finishExport(msg exportDoneMsg) UIModel {
	if msg.err != nil {
		log.Error().Err(msg.err).Str("table", m.tableName).Msg("PDF export failed")
		m.statusMsg = ""
		m.errMsg = fmt.Sprintf("Export failed: %v", msg.err)
		return m
	}
	m.statusMsg = fmt.Sprintf("Saved %s", msg.path)
	return m
}
