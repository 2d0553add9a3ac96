package catalog

// Trip is the complete read-only reference data for one journey.
type Trip struct {
	Title          string            `yaml:"title"`
	Subtitle       string            `yaml:"subtitle"`
	Days           []Day             `yaml:"days"`
	Flights        Flights           `yaml:"flights"`
	Accommodations []Accommodation   `yaml:"accommodations"`
	PackingList    []PackingCategory `yaml:"packing_list"`
	ImportantNotes []string          `yaml:"important_notes"`
	PowerBankRules []Rule            `yaml:"power_bank_rules"`
	Guides         map[string]Guide  `yaml:"guides"`
}

// Day is one itinerary day.
type Day struct {
	Number int    `yaml:"day"`
	Date   string `yaml:"date"`
	Theme  string `yaml:"theme"`
	Color  string `yaml:"color"` // hex accent, e.g. "#2b6e90"
	Stops  []Stop `yaml:"stops"`
}

// Stop is one scheduled point within a day.
type Stop struct {
	Time          string     `yaml:"time"`
	Name          string     `yaml:"name"`
	Category      string     `yaml:"category"` // glyph such as "⛩️"
	DurationLabel string     `yaml:"duration_label"`
	MapURL        string     `yaml:"map_url"`
	ParkingURL    string     `yaml:"parking_url"`
	StorageURL    string     `yaml:"storage_url"`
	SpecialURL    string     `yaml:"special_url"`
	Note          string     `yaml:"note"`
	Transport     *Transport `yaml:"transport"` // leg to the next stop
}

// Transport describes how to reach the next stop.
type Transport struct {
	Mode string `yaml:"mode"`
	Time string `yaml:"time"`
}

// Flights holds both legs.
type Flights struct {
	Outbound Flight `yaml:"outbound"`
	Inbound  Flight `yaml:"inbound"`
}

// Flight is a single flight record.
type Flight struct {
	Kind      string   `yaml:"type"`
	Date      string   `yaml:"date"`
	Airline   string   `yaml:"airline"`
	Number    string   `yaml:"flight_number"`
	Departure Endpoint `yaml:"departure"`
	Arrival   Endpoint `yaml:"arrival"`
	Baggage   Baggage  `yaml:"baggage"`
	Color     string   `yaml:"color"`
}

// Endpoint is one end of a flight.
type Endpoint struct {
	City     string `yaml:"city"`
	Terminal string `yaml:"terminal"`
	Time     string `yaml:"time"`
}

// Baggage lists allowances.
type Baggage struct {
	Checked string `yaml:"checked"`
	CarryOn string `yaml:"carry_on"`
}

// Accommodation is one lodging entry.
type Accommodation struct {
	Name    string `yaml:"name"`
	Dates   string `yaml:"dates"`
	Address string `yaml:"address"`
	MapURL  string `yaml:"map_url"`
	Notes   string `yaml:"notes"`
}

// PackingCategory is a template category; every item starts unpacked.
type PackingCategory struct {
	Name  string   `yaml:"category"`
	Icon  string   `yaml:"icon"`
	Items []string `yaml:"items"`
}

// Rule is a labelled regulation line.
type Rule struct {
	Rule   string `yaml:"rule"`
	Detail string `yaml:"detail"`
}

// Guide is a static informational page.
type Guide struct {
	Title    string    `yaml:"title"`
	Icon     string    `yaml:"icon"`
	Summary  string    `yaml:"summary"`
	Sections []Section `yaml:"sections"`
}

// Section is a headed block of lines within a guide.
type Section struct {
	Heading string   `yaml:"heading"`
	Lines   []string `yaml:"lines"`
}
