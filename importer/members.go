package importer

import (
	"nouasseur-portal/database/model"
	"nouasseur-portal/logger"

	"gorm.io/gorm"
)

// ImportMembers rebuilds the members table from a spreadsheet export.
// Returns the number of imported rows.
func ImportMembers(db *gorm.DB, path string) (int, error) {
	records, err := readSheet(path)
	if err != nil {
		return 0, err
	}

	members := make([]*model.Member, 0, len(records))
	for _, record := range records {
		members = append(members, memberFromRecord(record))
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Member{}).Error; err != nil {
			return err
		}
		if len(members) == 0 {
			return nil
		}
		return tx.CreateInBatches(members, insertBatchSize).Error
	})
	if err != nil {
		return 0, err
	}
	logger.Infof("imported %d members", len(members))
	return len(members), nil
}

// memberFromRecord maps the memdata spreadsheet columns onto a Member.
func memberFromRecord(r map[string]string) *model.Member {
	return &model.Member{
		MemberId:            parseInt(r["id"]),
		Status:              r["status"],
		FirstName:           r["fname"],
		MiddleInitial:       r["mdinit"],
		School:              r["school"],
		Nickname1:           r["nicname1"],
		Nickname2:           r["nicname2"],
		LastName:            r["lmname"],
		MarriedName:         r["marrname"],
		SpouseName:          r["spname"],
		MemberType:          r["type"],
		Address1:            r["addr1"],
		Address2:            r["addr2"],
		Address3:            r["addr3"],
		City:                r["city"],
		State:               r["state"],
		ZipCode:             r["zip"],
		Country:             r["country"],
		HomePhone:           r["hphone"],
		WorkPhone:           r["wphone"],
		Fax:                 r["fax"],
		MailingOption:       r["namsento"],
		Email1:              r["emailaddr1"],
		Email2:              r["emailaddr2"],
		MemberLicense:       r["memlic"],
		SpouseLicense:       r["spolic"],
		MemberSSN:           r["memssn"],
		SpouseSSN:           r["spossn"],
		LocatedDate:         parseDate(r["locdate"]),
		Source:              r["source"],
		LocationCost:        r["loccost"],
		GraduationYear:      r["gradyr"],
		NcbGraduate:         r["ncbgrd"],
		GradesAttended:      r["grattend"],
		DatesAttended:       r["datesattend"],
		OtherSchool1:        r["oschool1"],
		DatesGrades1:        r["datesgrade1"],
		OtherSchool2:        r["oschool2"],
		DatesGrades2:        r["datesgrade2"],
		OtherSchool3:        r["oschool3"],
		DatesGrades3:        r["datesgrade3"],
		ParentFather:        r["parfather"],
		ParentMother:        r["parmother"],
		ParentAddress:       r["paraddr"],
		SentMRA:             r["sentmra"],
		QuestionnaireDate:   parseDate(r["quesent"]),
		QuestionnaireReturn: r["queret"],
		DateReturned:        parseDate(r["dateret"]),
		DirectoryRequested:  r["dirreq"],
		AmountReceived:      r["amtrec"],
		DirectorySent:       parseDate(r["dirsent"]),
		MemberBio:           r["abiodat"],
		SpouseBio:           r["sbiodat"],
		NewBio:              r["nbionew"],
		Comments:            r["comments"],
		ReunionAttended:     r["reuattend"],
	}
}
