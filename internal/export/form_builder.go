package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	exporterrors "uns-visa/internal/export/errors"
)

const (
	sheetApplicant1   = "申請人等作成用１"
	sheetApplicant2   = "申請人等作成用２"
	sheetApplicant3   = "申請人等作成用３"
	sheetOrganization = "所属機関等作成用"
)

var formTitles = map[string][2]string{
	FormRenewal: {"在 留 期 間 更 新 許 可 申 請 書", "APPLICATION FOR EXTENSION OF PERIOD OF STAY"},
	FormCOE:     {"在留資格認定証明書交付申請書", "APPLICATION FOR CERTIFICATE OF ELIGIBILITY"},
	FormChange:  {"在 留 資 格 変 更 許 可 申 請 書", "APPLICATION FOR CHANGE OF STATUS OF RESIDENCE"},
}

// BuildForm renders an immigration application workbook: three applicant
// sheets plus the organization sheet. The cell content is a field mapping
// onto the official sections, not a print-perfect reproduction.
func BuildForm(data FormData) (*excelize.File, error) {
	titles, ok := formTitles[data.FormType]
	if !ok {
		return nil, exporterrors.ErrUnknownFormType
	}

	f := excelize.NewFile()

	if err := buildApplicantSheet1(f, data, titles); err != nil {
		return nil, err
	}
	if err := buildApplicantSheet2(f, data); err != nil {
		return nil, err
	}
	if err := buildApplicantSheet3(f, data); err != nil {
		return nil, err
	}
	if err := buildOrganizationSheet(f, data); err != nil {
		return nil, err
	}

	f.DeleteSheet("Sheet1")
	if idx, err := f.GetSheetIndex(sheetApplicant1); err == nil {
		f.SetActiveSheet(idx)
	}

	return f, nil
}

func buildApplicantSheet1(f *excelize.File, data FormData, titles [2]string) error {
	sheet := sheetApplicant1
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	f.SetColWidth(sheet, "A", "A", 4)
	f.SetColWidth(sheet, "B", "E", 14)
	f.SetColWidth(sheet, "F", "H", 11)

	f.MergeCell(sheet, "A1", "H1")
	f.SetCellValue(sheet, "A1", titles[0])
	f.MergeCell(sheet, "A2", "H2")
	f.SetCellValue(sheet, "A2", titles[1])

	office := data.SubmissionOffice
	if office == "" {
		office = "名古屋"
	}
	f.MergeCell(sheet, "A4", "D4")
	f.SetCellValue(sheet, "A4", office+" 出入国在留管理局長 殿")

	f.MergeCell(sheet, "G3", "H8")
	f.SetCellValue(sheet, "G3", "写真\nPhoto\n縦4cm×横3cm")

	f.MergeCell(sheet, "A6", "F6")
	f.SetCellValue(sheet, "A6", "【申請人等作成用１】 FOR APPLICANT, PART 1")

	row := 9
	row = formRow(f, sheet, row, "1", "国籍・地域", "Nationality/Region", data.Nationality)
	row = formRow(f, sheet, row, "2", "生年月日", "Date of birth", formatJaDate(data.DateOfBirth))

	name := data.ApplicantName()
	if data.NameKana != "" {
		name = fmt.Sprintf("%s (%s)", data.NameKana, name)
	}
	row = formRow(f, sheet, row, "3", "氏名", "Name", name)
	row = formRow(f, sheet, row, "4", "性別", "Sex", checkboxPair(data.Sex == "male", "男 Male", "女 Female"))
	row = formRow(f, sheet, row, "5", "本国における居住地", "Home town/city", data.HomeTownCity)
	row = formRow(f, sheet, row, "6", "住居地", "Address in Japan", data.AddressJapan)
	row = formRow(f, sheet, row, "7", "電話番号", "Telephone", data.Phone)

	f.SetCellValue(sheet, cell("A", row), "8")
	f.SetCellValue(sheet, cell("B", row), "旅券")
	f.SetCellValue(sheet, cell("C", row), "番号: "+data.PassportNumber)
	f.SetCellValue(sheet, cell("E", row), "有効期限: "+formatJaDate(data.PassportExpireAt))
	row++

	f.SetCellValue(sheet, cell("A", row), "9")
	f.SetCellValue(sheet, cell("B", row), "現に有する在留資格")
	f.SetCellValue(sheet, cell("C", row), data.VisaStatus)
	f.SetCellValue(sheet, cell("E", row), "在留期間: "+data.PeriodOfStay)
	f.SetCellValue(sheet, cell("G", row), "満了日: "+formatJaDate(data.VisaExpireDate))
	row++

	formRow(f, sheet, row, "10", "在留カード番号", "Residence card number", data.ResidenceCardNo)

	return nil
}

func buildApplicantSheet2(f *excelize.File, data FormData) error {
	sheet := sheetApplicant2
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	f.SetColWidth(sheet, "A", "A", 4)
	f.SetColWidth(sheet, "B", "H", 12)

	f.MergeCell(sheet, "A1", "H1")
	f.SetCellValue(sheet, "A1", "【申請人等作成用２】 FOR APPLICANT, PART 2")

	row := 3
	f.SetCellValue(sheet, cell("A", row), "16")
	f.SetCellValue(sheet, cell("B", row), "勤務先 Place of employment")
	row++

	f.SetCellValue(sheet, cell("B", row), "(1) 名称")
	f.MergeCell(sheet, cell("C", row), cell("F", row))
	f.SetCellValue(sheet, cell("C", row), data.WorkLocationName)
	row++

	f.SetCellValue(sheet, cell("B", row), "(2) 所在地")
	f.MergeCell(sheet, cell("C", row), cell("H", row))
	f.SetCellValue(sheet, cell("C", row), data.WorkLocationAddress)
	row++

	f.SetCellValue(sheet, cell("B", row), "(3) 電話番号")
	f.SetCellValue(sheet, cell("C", row), data.WorkLocationPhone)
	row += 2

	f.SetCellValue(sheet, cell("A", row), "17")
	f.SetCellValue(sheet, cell("B", row), "最終学歴 Education")
	row++
	f.MergeCell(sheet, cell("C", row), cell("F", row))
	f.SetCellValue(sheet, cell("B", row), "学校名")
	f.SetCellValue(sheet, cell("C", row), data.Education)

	return nil
}

func buildApplicantSheet3(f *excelize.File, data FormData) error {
	sheet := sheetApplicant3
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	f.SetColWidth(sheet, "A", "A", 4)
	f.SetColWidth(sheet, "B", "D", 20)

	f.MergeCell(sheet, "A1", "D1")
	f.SetCellValue(sheet, "A1", "【申請人等作成用３】 FOR APPLICANT, PART 3")

	row := 3
	f.SetCellValue(sheet, cell("A", row), "18")
	f.SetCellValue(sheet, cell("B", row), "申請人（法定代理人）")
	row++

	f.SetCellValue(sheet, cell("B", row), "(1) 氏名")
	f.SetCellValue(sheet, cell("C", row), data.ApplicantName())
	row++
	f.SetCellValue(sheet, cell("B", row), "(2) 本人との関係")
	f.SetCellValue(sheet, cell("C", row), "本人")
	row++
	f.SetCellValue(sheet, cell("B", row), "(3) 住所")
	f.SetCellValue(sheet, cell("C", row), data.AddressJapan)
	row += 2

	f.SetCellValue(sheet, cell("A", row), "以上の記載内容は事実と相違ありません。")
	row++
	f.SetCellValue(sheet, cell("A", row), "申請人（法定代理人）の署名")
	f.SetCellValue(sheet, cell("C", row), "___________________________")
	f.SetCellValue(sheet, cell("D", row), "作成年月日: "+formatJaDateValue(time.Now()))

	return nil
}

func buildOrganizationSheet(f *excelize.File, data FormData) error {
	sheet := sheetOrganization
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	f.SetColWidth(sheet, "A", "A", 4)
	f.SetColWidth(sheet, "B", "F", 15)

	f.MergeCell(sheet, "A1", "F1")
	f.SetCellValue(sheet, "A1", "【所属機関等作成用１】 FOR ORGANIZATION, PART 1")

	row := 3
	f.SetCellValue(sheet, cell("A", row), "1")
	f.SetCellValue(sheet, cell("B", row), "雇用する外国人の氏名")
	f.MergeCell(sheet, cell("C", row), cell("E", row))
	f.SetCellValue(sheet, cell("C", row), data.ApplicantName())
	row++

	f.SetCellValue(sheet, cell("A", row), "2")
	f.SetCellValue(sheet, cell("B", row), "契約の形態")
	f.SetCellValue(sheet, cell("C", row), "☑ 雇用  ☐ 委任  ☐ 請負  ☐ その他")
	row += 2

	f.SetCellValue(sheet, cell("A", row), "3")
	f.SetCellValue(sheet, cell("B", row), "所属機関等（勤務先）")
	row++

	f.SetCellValue(sheet, cell("B", row), "(1) 名称")
	f.MergeCell(sheet, cell("C", row), cell("E", row))
	f.SetCellValue(sheet, cell("C", row), data.EmployerName)
	row++
	f.SetCellValue(sheet, cell("B", row), "(2) 法人番号")
	f.SetCellValue(sheet, cell("C", row), data.CorporationNumber)
	row++
	f.SetCellValue(sheet, cell("B", row), "(3) 労働者派遣事業許可番号")
	f.SetCellValue(sheet, cell("C", row), data.DispatchLicenseNo)
	row++
	f.SetCellValue(sheet, cell("B", row), "(4) 所在地")
	f.MergeCell(sheet, cell("C", row), cell("F", row))
	f.SetCellValue(sheet, cell("C", row), data.EmployerAddress)
	row++
	f.SetCellValue(sheet, cell("B", row), "電話番号")
	f.SetCellValue(sheet, cell("C", row), data.EmployerPhone)
	row += 2

	f.SetCellValue(sheet, cell("A", row), "派遣先（実際の就労場所）")
	row++
	f.SetCellValue(sheet, cell("B", row), "名称:")
	f.SetCellValue(sheet, cell("C", row), data.WorkLocationName)
	row++
	f.SetCellValue(sheet, cell("B", row), "所在地:")
	f.SetCellValue(sheet, cell("C", row), data.WorkLocationAddress)
	row += 2

	f.SetCellValue(sheet, cell("B", row), "代表者:")
	rep := data.RepresentativeName
	if data.RepresentativeRole != "" {
		rep = data.RepresentativeRole + " " + rep
	}
	f.SetCellValue(sheet, cell("C", row), rep)
	row++
	f.SetCellValue(sheet, cell("B", row), "作成年月日:")
	f.SetCellValue(sheet, cell("C", row), formatJaDateValue(time.Now()))

	return nil
}

func formRow(f *excelize.File, sheet string, row int, num, labelJa, labelEn, value string) int {
	f.SetCellValue(sheet, cell("A", row), num)
	f.SetCellValue(sheet, cell("B", row), labelJa)
	f.SetCellValue(sheet, cell("C", row), labelEn)
	f.MergeCell(sheet, cell("D", row), cell("F", row))
	f.SetCellValue(sheet, cell("D", row), value)
	return row + 1
}

func checkboxPair(first bool, a, b string) string {
	if first {
		return "☑ " + a + "  ☐ " + b
	}
	return "☐ " + a + "  ☑ " + b
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func formatJaDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatJaDateValue(*t)
}

func formatJaDateValue(t time.Time) string {
	return t.Format("2006年01月02日")
}
