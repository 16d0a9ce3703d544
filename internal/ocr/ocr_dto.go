package ocr

// ZairyuCard holds the fields a vision scan reads off a residence card.
// JSON keys follow the scanner's camelCase contract.
type ZairyuCard struct {
	Name              string `json:"name"`
	NameKanji         string `json:"nameKanji"`
	Nationality       string `json:"nationality"`
	DateOfBirth       string `json:"dateOfBirth"`
	Sex               string `json:"sex"`
	StatusOfResidence string `json:"statusOfResidence"`
	PeriodOfStay      string `json:"periodOfStay"`
	ExpirationDate    string `json:"expirationDate"`
	CardNumber        string `json:"cardNumber"`
	Address           string `json:"address"`
}

type Passport struct {
	Surname        string `json:"surname"`
	GivenNames     string `json:"givenNames"`
	PassportNumber string `json:"passportNumber"`
	DateOfExpiry   string `json:"dateOfExpiry"`
	IssuingCountry string `json:"issuingCountry"`
	PlaceOfBirth   string `json:"placeOfBirth"`
}

const (
	DocumentZairyuCard = "zairyu_card"
	DocumentPassport   = "passport"
)

type ScanRequest struct {
	ImageBase64  string `json:"image_base64" binding:"required"`
	DocumentType string `json:"document_type" binding:"required,oneof=zairyu_card passport"`
}

type ScanResponse struct {
	Success      bool              `json:"success"`
	DocumentType string            `json:"document_type"`
	Extracted    map[string]string `json:"extracted_data"`
	Confidence   string            `json:"confidence,omitempty"`
}

type ImportRequest struct {
	ZairyuCard *ZairyuCard `json:"zairyu_card"`
	Passport   *Passport   `json:"passport"`
}

// ImportResponse carries the employee draft mapped from scanned documents
// plus whether a worker with that residence card is already on file.
type ImportResponse struct {
	Extracted  map[string]string `json:"extracted"`
	IsExisting bool              `json:"is_existing"`
	ExistingID string            `json:"existing_id,omitempty"`
}
