package types

import (
	"github.com/google/uuid"
)

// RenderID identifies a single dashboard render pass
type RenderID string

// String returns the string representation
func (id RenderID) String() string {
	return string(id)
}

// NewRenderID creates a new RenderID
func NewRenderID() RenderID {
	return RenderID(uuid.New().String())
}

// DatasetURL is the location of a remote incident spreadsheet
type DatasetURL string

// String returns the string representation
func (u DatasetURL) String() string {
	return string(u)
}

// DefaultDatasetURL is the Global Cybersecurity Threats 2015-2024 workbook
const DefaultDatasetURL DatasetURL = "https://raw.githubusercontent.com/yeahjohnkim/home/main/Global_Cybersecurity_Threats_2015-2024.xlsx"
