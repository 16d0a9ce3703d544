package importsync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fullRow() Row {
	return Row{
		ColEmployeeCode: "UNS-202401-0007",
		ColName:         "GARCIA MARIA",
		ColSex:          "女",
		ColNationality:  "フィリピン",
		ColBirthDate:    "1995-04-12",
		ColVisaExpire:   "2026/01/31",
		ColVisaType:     "技術・人文知識・国際業務",
		ColPostalCode:   "457-0071",
		ColAddress:      "愛知県名古屋市南区千竈通3-10",
		ColApartment:    "サンハイツ201",
		ColHireDate:     "2024-01-15",
		ColRetireDate:   "",
		ColCurrent:      "",
	}
}

func TestMapEmployeeRow(t *testing.T) {
	cand, err := MapEmployeeRow(fullRow())
	assert.NoError(t, err)

	assert.Equal(t, "UNS-202401-0007", cand.EmployeeCode)
	assert.Equal(t, "GARCIA", *cand.FamilyName)
	assert.Equal(t, "MARIA", *cand.GivenName)
	assert.Equal(t, "female", *cand.Sex)
	assert.Equal(t, "フィリピン", *cand.Nationality)
	assert.Equal(t, time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC), *cand.BirthDate)
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), *cand.VisaExpireDate)
	assert.Equal(t, "技術・人文知識・国際業務", *cand.VisaType)
	// postal codes are stored bare, separators stripped
	assert.Equal(t, "4570071", *cand.PostalCode)
	assert.Equal(t, "active", cand.EmploymentStatus)
	// an empty cell in a present column clears the stored value
	assert.NotNil(t, cand.RetireDate)
	assert.True(t, cand.RetireDate.IsZero())
}

func TestMapEmployeeRowEmptyCellsOverwrite(t *testing.T) {
	row := fullRow()
	row[ColNationality] = ""
	row[ColSex] = "nan"
	cand, err := MapEmployeeRow(row)
	assert.NoError(t, err)
	// present-but-empty cells map to empty values, not to absence
	assert.Equal(t, "", *cand.Nationality)
	assert.Equal(t, "", *cand.Sex)
}

func TestMapEmployeeRowRequiresCode(t *testing.T) {
	for _, code := range []string{"", "   ", "nan"} {
		row := fullRow()
		row[ColEmployeeCode] = code
		_, err := MapEmployeeRow(row)
		assert.ErrorIs(t, err, ErrMissingEmployeeCode, "code %q", code)
	}
}

func TestMapEmployeeRowAbsentColumns(t *testing.T) {
	// a sheet carrying only the code and name columns must leave every other
	// field nil so reconciliation preserves stored values
	cand, err := MapEmployeeRow(Row{
		ColEmployeeCode: "UNS-202401-0001",
		ColName:         "田中 太郎",
	})
	assert.NoError(t, err)
	assert.Nil(t, cand.Sex)
	assert.Nil(t, cand.Nationality)
	assert.Nil(t, cand.BirthDate)
	assert.Nil(t, cand.VisaExpireDate)
	assert.Nil(t, cand.Address)
	assert.Equal(t, "active", cand.EmploymentStatus)
}

func TestMapEmployeeRowUnparseableDateIsAbsent(t *testing.T) {
	row := fullRow()
	row[ColVisaExpire] = "期限確認中"
	cand, err := MapEmployeeRow(row)
	assert.NoError(t, err)
	assert.Nil(t, cand.VisaExpireDate)
}

func TestMapEmployeeRowRetired(t *testing.T) {
	row := fullRow()
	row[ColCurrent] = "退社"
	row[ColRetireDate] = "2025-02-28"
	cand, err := MapEmployeeRow(row)
	assert.NoError(t, err)
	assert.Equal(t, "inactive", cand.EmploymentStatus)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), *cand.RetireDate)
}

func TestMapFactory(t *testing.T) {
	doc := FactoryDoc{
		ClientCompany: FactoryCompany{
			Name:                      "株式会社デンソー岡崎",
			CorporationNumber:         "1234567890123",
			EmploymentInsuranceNumber: "12345678901",
			Address:                   "愛知県岡崎市橋目町字中新切1",
			Phone:                     "0564-12-3456",
			ResponsiblePerson:         &FactoryPerson{Name: "佐藤 健一"},
		},
		Plant: &FactoryPlant{Name: "岡崎第二工場", Address: "愛知県岡崎市橋目町2", Phone: "0564-12-9999"},
	}

	cand, err := MapFactory(doc)
	assert.NoError(t, err)
	assert.Equal(t, "株式会社デンソー岡崎", cand.Name)
	assert.Equal(t, "1234567890123", *cand.CorporationNumber)
	assert.Equal(t, "愛知県", cand.Prefecture)
	assert.Equal(t, "佐藤 健一", *cand.ResponsiblePerson)
	assert.Equal(t, "製造業", cand.BusinessType)
	// the plant is the dispatch destination: its name becomes the branch
	// name and its address and phone win over the head office's
	assert.Equal(t, "岡崎第二工場", *cand.BranchName)
	assert.Equal(t, "愛知県岡崎市橋目町2", *cand.Address)
	assert.Equal(t, "0564-12-9999", *cand.Phone)
	assert.Len(t, cand.Plants, 1)
	assert.Equal(t, "岡崎第二工場", cand.Plants[0].Name)
}

func TestMapFactoryPlantAddressFallback(t *testing.T) {
	// only the plant carries an address: it supplies the candidate address
	// and the prefecture parse
	cand, err := MapFactory(FactoryDoc{
		ClientCompany: FactoryCompany{Name: "東洋精機"},
		Plant:         &FactoryPlant{Name: "関工場", Address: "岐阜県関市本町1-2"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "岐阜県関市本町1-2", *cand.Address)
	assert.Equal(t, "岐阜県", cand.Prefecture)
	assert.Equal(t, "関工場", *cand.BranchName)

	// the plant has no address of its own: the head office address holds
	cand, err = MapFactory(FactoryDoc{
		ClientCompany: FactoryCompany{Name: "東洋精機", Address: "岐阜県関市栄町5", Phone: "0575-1-1111"},
		Plant:         &FactoryPlant{Name: "関工場"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "岐阜県関市栄町5", *cand.Address)
	assert.Equal(t, "0575-1-1111", *cand.Phone)
	assert.Equal(t, "岐阜県", cand.Prefecture)
}

func TestMapFactoryMinimal(t *testing.T) {
	cand, err := MapFactory(FactoryDoc{ClientCompany: FactoryCompany{Name: "東洋精機"}})
	assert.NoError(t, err)
	assert.Equal(t, "東洋精機", cand.Name)
	assert.Nil(t, cand.CorporationNumber)
	assert.Equal(t, "", cand.Prefecture)
	assert.Empty(t, cand.Plants)

	_, err = MapFactory(FactoryDoc{})
	assert.ErrorIs(t, err, ErrMissingCompanyName)
}
