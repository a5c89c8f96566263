package registry

import (
	"encoding/json"
	"fmt"
)

// Cosmetic is one registration record as returned by the registries API.
type Cosmetic struct {
	NameCosmeticHeb  string    `json:"nameCosmeticHeb"`
	NameCosmeticEng  string    `json:"nameCosmeticEng"`
	NotificationCode string    `json:"notificationCode"`
	ImportTrack      string    `json:"importTrack"`
	RpCorporation    string    `json:"rpCorporation"`
	Manufacturer     string    `json:"manufacturer"`
	Importer         string    `json:"importer"`
	LicenseNum       string    `json:"licenseNum"`
	ExpDate          string    `json:"expDate"`
	Packages         []Package `json:"packages"`
	Shades           []Shade   `json:"shades"`
}

type Package struct {
	PackageName     string   `json:"packageName"`
	Quantity        Quantity `json:"quantity"`
	MeasurementDesc string   `json:"measurementDesc"`
}

type Shade struct {
	ShadeName string `json:"shadeName"`
}

// Quantity is a string on some records and a bare number on others.
type Quantity string

func (q *Quantity) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*q = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = Quantity(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("must be a quantity in string or number format, got %s", string(data))
	}

	*q = Quantity(n.String())
	return nil
}

// Query selects the record subset to fetch. The zero value fetches the
// complete registry.
type Query struct {
	BusinessNotificationItemID int `json:"businessNotificationItemId,omitempty"`
	BusinessTypeNotificationID int `json:"businessTypeNotificationId,omitempty"`
}

var (
	// PrimaryQuery is the unfiltered record set for the filtered worksheet.
	PrimaryQuery = Query{}

	// SecondaryQuery is the business-notification subset for the flattened
	// worksheet.
	SecondaryQuery = Query{
		BusinessNotificationItemID: 34,
		BusinessTypeNotificationID: 5,
	}
)

type request struct {
	IsDescending               bool `json:"isDescending"`
	MaxResult                  int  `json:"maxResult"`
	PageNumber                 int  `json:"pageNumber"`
	BusinessNotificationItemID int  `json:"businessNotificationItemId,omitempty"`
	BusinessTypeNotificationID int  `json:"businessTypeNotificationId,omitempty"`
}

type envelope struct {
	ReturnObject returnObject `json:"returnObject"`
}

type returnObject struct {
	CosmeticsList []Cosmetic `json:"cosmeticsList"`
	TotalRows     int64      `json:"totalRows"`
	MaxResults    int64      `json:"maxResults"`
}

// Page is one page of results plus the pagination totals reported by the
// API.
type Page struct {
	Cosmetics  []Cosmetic
	TotalRows  int64
	MaxResults int64
}
