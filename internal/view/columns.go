package view

// ColumnID identifies one of the fixed player table columns. The set is
// closed on purpose: persisted preferences from older versions may carry
// column ids that no longer exist and those are rejected at the load
// boundary instead of propagating loose strings through the table code.
type ColumnID string

const (
	ColUserID    ColumnID = "user_id"
	ColName      ColumnID = "name"
	ColScore     ColumnID = "score"
	ColKills     ColumnID = "kills"
	ColDeaths    ColumnID = "deaths"
	ColKPM       ColumnID = "kpm"
	ColConnected ColumnID = "connected"
	ColMapTime   ColumnID = "map_time"
	ColPing      ColumnID = "ping"
	ColHealth    ColumnID = "health"
	ColAlive     ColumnID = "alive"
)

// AllColumns lists every valid column in canonical order.
func AllColumns() []ColumnID {
	return []ColumnID{
		ColUserID, ColName, ColScore, ColKills, ColDeaths, ColKPM,
		ColConnected, ColMapTime, ColPing, ColHealth, ColAlive,
	}
}

// DefaultColumns is the column set used when nothing valid was persisted.
func DefaultColumns() []ColumnID {
	return []ColumnID{ColUserID, ColName, ColScore, ColKills, ColDeaths, ColPing}
}

// Valid reports whether the id names a known column.
func (c ColumnID) Valid() bool {
	switch c {
	case ColUserID, ColName, ColScore, ColKills, ColDeaths, ColKPM,
		ColConnected, ColMapTime, ColPing, ColHealth, ColAlive:
		return true
	default:
		return false
	}
}

// Title returns the table header label for the column.
func (c ColumnID) Title() string {
	switch c {
	case ColUserID:
		return "UID"
	case ColName:
		return "Name"
	case ColScore:
		return "Score"
	case ColKills:
		return "Kills"
	case ColDeaths:
		return "Deaths"
	case ColKPM:
		return "KPM"
	case ColConnected:
		return "Time"
	case ColMapTime:
		return "Map Time"
	case ColPing:
		return "Ping"
	case ColHealth:
		return "HP"
	case ColAlive:
		return "Alive"
	default:
		return string(c)
	}
}
