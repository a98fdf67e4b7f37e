package importer

import (
	"strings"

	"nouasseur-portal/database/model"
	"nouasseur-portal/logger"

	"gorm.io/gorm"
)

// ImportDirectories rebuilds the directories table from the member
// spreadsheet, deriving listing fields from the raw alumni columns.
// Returns the number of imported rows.
func ImportDirectories(db *gorm.DB, path string) (int, error) {
	records, err := readSheet(path)
	if err != nil {
		return 0, err
	}

	entries := make([]*model.DirectoryEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, directoryFromRecord(record))
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.DirectoryEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.CreateInBatches(entries, insertBatchSize).Error
	})
	if err != nil {
		return 0, err
	}
	logger.Infof("imported %d directory entries", len(entries))
	return len(entries), nil
}

// InferCategory derives the directory category from the free-text type
// column: known keywords map to canonical categories, anything else keeps
// the literal (uppercased) type.
func InferCategory(rawType string) string {
	t := strings.ToUpper(strings.TrimSpace(rawType))
	switch {
	case t == "":
		return "Unknown"
	case strings.Contains(t, "FACULTY"):
		return "Faculty"
	case strings.Contains(t, "STUDENT"):
		return "Student"
	case strings.Contains(t, "STAFF"):
		return "Staff"
	case strings.Contains(t, "DEPENDENT"):
		return "Dependent"
	default:
		return t
	}
}

// fullName assembles "first middle last" from the name columns, preferring
// the last name over the married name and stripping parentheses.
func fullName(first, middle, last, married string) string {
	name := strings.TrimSpace(first)
	if m := strings.TrimSpace(middle); m != "" {
		name += " " + m
	}
	surname := strings.TrimSpace(last)
	if surname == "" {
		surname = strings.TrimSpace(married)
	}
	if surname != "" {
		surname = strings.NewReplacer("(", "", ")", "").Replace(surname)
		name += " " + surname
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "Unknown"
	}
	return name
}

// fullAddress joins the address lines with newlines, skipping blanks.
func fullAddress(lines ...string) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, "\n")
}

// isActiveStatus reports whether a member status keeps the listing active.
func isActiveStatus(status string) bool {
	s := strings.ToUpper(status)
	return !strings.Contains(s, "NOT LOCATED") && !strings.Contains(s, "DECEASED")
}

// buildDescription summarizes the school-history columns into a free-text
// description.
func buildDescription(r map[string]string) string {
	var b strings.Builder
	if r["gradyr"] != "" {
		b.WriteString("Graduation Year: " + r["gradyr"] + "\n")
	}
	if r["grattend"] != "" || r["datesattend"] != "" {
		grades := r["grattend"]
		if grades == "" {
			grades = "Unknown"
		}
		dates := r["datesattend"]
		if dates == "" {
			dates = "Unknown"
		}
		b.WriteString("Grades Attended: " + grades + "\n")
		b.WriteString("Dates Attended: " + dates + "\n\n")
	}
	otherSchools := [][2]string{
		{r["oschool1"], r["datesgrade1"]},
		{r["oschool2"], r["datesgrade2"]},
		{r["oschool3"], r["datesgrade3"]},
	}
	for _, school := range otherSchools {
		if school[0] == "" {
			continue
		}
		b.WriteString("Other School: " + school[0] + "\n")
		if school[1] != "" {
			b.WriteString("Dates/Grades: " + school[1] + "\n\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func directoryFromRecord(r map[string]string) *model.DirectoryEntry {
	organization := r["school"]
	if organization == "" {
		organization = "Nouasseur"
	}
	active := isActiveStatus(r["status"])
	return &model.DirectoryEntry{
		Name:         fullName(r["fname"], r["mdinit"], r["lmname"], r["marrname"]),
		Position:     r["type"],
		Organization: organization,
		Address:      fullAddress(r["addr1"], r["addr2"], r["addr3"]),
		City:         r["city"],
		State:        r["state"],
		ZipCode:      r["zip"],
		Country:      r["country"],
		Phone:        field(r, "hphone", "wphone"),
		Email:        field(r, "emailaddr1", "emailaddr2"),
		Category:     InferCategory(r["type"]),
		SubCategory:  r["type"],
		Description:  buildDescription(r),
		Notes:        r["comments"],
		SortOrder:    parseInt(r["id"]),
		IsActive:     &active,
	}
}
