package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	exporterrors "uns-visa/internal/export/errors"
)

func testFormData() FormData {
	dob := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	expire := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	return FormData{
		FormType:        FormRenewal,
		Nationality:     "ベトナム",
		DateOfBirth:     &dob,
		FamilyName:      "NGUYEN",
		GivenName:       "VAN MINH",
		Sex:             "male",
		AddressJapan:    "愛知県名古屋市中区栄1-1-1",
		Phone:           "090-1234-5678",
		PassportNumber:  "B12345678",
		VisaStatus:      "技術・人文知識・国際業務",
		PeriodOfStay:    "3年",
		VisaExpireDate:  &expire,
		ResidenceCardNo: "AB12345678CD",
		Education:       "ハノイ工科大学",

		EmployerName:       "株式会社UNS",
		CorporationNumber:  "1234567890123",
		EmployerAddress:    "愛知県春日井市1-2-3",
		EmployerPhone:      "0568-00-0000",
		RepresentativeName: "山田太郎",

		WorkLocationName:    "テスト工業株式会社",
		WorkLocationAddress: "愛知県豊田市2-3-4",
		WorkLocationPhone:   "0565-11-2222",
	}
}

func TestBuildForm_SheetsAndTitle(t *testing.T) {
	f, err := BuildForm(testFormData())
	assert.NoError(t, err)

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, sheetApplicant1)
	assert.Contains(t, sheets, sheetApplicant2)
	assert.Contains(t, sheets, sheetApplicant3)
	assert.Contains(t, sheets, sheetOrganization)
	assert.NotContains(t, sheets, "Sheet1", "default sheet removed")

	title, err := f.GetCellValue(sheetApplicant1, "A1")
	assert.NoError(t, err)
	assert.Equal(t, "在 留 期 間 更 新 許 可 申 請 書", title)
}

func TestBuildForm_ApplicantFields(t *testing.T) {
	f, err := BuildForm(testFormData())
	assert.NoError(t, err)

	nationality, _ := f.GetCellValue(sheetApplicant1, "D9")
	assert.Equal(t, "ベトナム", nationality)

	dob, _ := f.GetCellValue(sheetApplicant1, "D10")
	assert.Equal(t, "1990年05月15日", dob)

	name, _ := f.GetCellValue(sheetApplicant1, "D11")
	assert.Equal(t, "NGUYEN VAN MINH", name)

	sex, _ := f.GetCellValue(sheetApplicant1, "D12")
	assert.Contains(t, sex, "☑ 男 Male")
}

func TestBuildForm_OrganizationFields(t *testing.T) {
	f, err := BuildForm(testFormData())
	assert.NoError(t, err)

	applicant, _ := f.GetCellValue(sheetOrganization, "C3")
	assert.Equal(t, "NGUYEN VAN MINH", applicant)

	employer, _ := f.GetCellValue(sheetOrganization, "C7")
	assert.Equal(t, "株式会社UNS", employer)

	corpNo, _ := f.GetCellValue(sheetOrganization, "C8")
	assert.Equal(t, "1234567890123", corpNo)

	site, _ := f.GetCellValue(sheetOrganization, "C14")
	assert.Equal(t, "テスト工業株式会社", site)
}

func TestBuildForm_COETitle(t *testing.T) {
	data := testFormData()
	data.FormType = FormCOE

	f, err := BuildForm(data)
	assert.NoError(t, err)

	title, _ := f.GetCellValue(sheetApplicant1, "A1")
	assert.Equal(t, "在留資格認定証明書交付申請書", title)
}

func TestBuildForm_UnknownType(t *testing.T) {
	data := testFormData()
	data.FormType = "permanent"

	_, err := BuildForm(data)
	assert.Equal(t, exporterrors.ErrUnknownFormType, err)
}
