// Package model defines the database entities of the community portal.
package model

import "time"

// User is the identity principal for authentication. Users are created at
// registration and never deleted; only the password may change.
type User struct {
	Id           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"size:255;not null;uniqueIndex"`
	Email        string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// Member is a denormalized alumni record carried over from the source
// spreadsheet. Id is the only key the API uses; MemberId is the external
// spreadsheet id and is informational.
type Member struct {
	Id                  int        `json:"id" gorm:"primaryKey;autoIncrement"`
	MemberId            *int       `json:"memberId"`
	Status              string     `json:"status" gorm:"size:50"`
	FirstName           string     `json:"firstName" gorm:"size:100"`
	MiddleInitial       string     `json:"middleInitial" gorm:"size:255"`
	School              string     `json:"school" gorm:"size:100"`
	Nickname1           string     `json:"nickname1" gorm:"size:100"`
	Nickname2           string     `json:"nickname2" gorm:"size:100"`
	LastName            string     `json:"lastName" gorm:"size:100"`
	MarriedName         string     `json:"marriedName" gorm:"size:100"`
	SpouseName          string     `json:"spouseName" gorm:"size:100"`
	MemberType          string     `json:"memberType" gorm:"size:50"`
	Address1            string     `json:"address1" gorm:"size:255"`
	Address2            string     `json:"address2" gorm:"size:255"`
	Address3            string     `json:"address3" gorm:"size:255"`
	City                string     `json:"city" gorm:"size:100"`
	State               string     `json:"state" gorm:"size:50"`
	ZipCode             string     `json:"zipCode" gorm:"size:20"`
	Country             string     `json:"country" gorm:"size:100"`
	HomePhone           string     `json:"homePhone" gorm:"size:50"`
	WorkPhone           string     `json:"workPhone" gorm:"size:50"`
	Fax                 string     `json:"fax" gorm:"size:50"`
	MailingOption       string     `json:"mailingOption" gorm:"size:255"`
	Email1              string     `json:"email1" gorm:"size:255"`
	Email2              string     `json:"email2" gorm:"size:255"`
	MemberLicense       string     `json:"memberLicense" gorm:"size:50"`
	SpouseLicense       string     `json:"spouseLicense" gorm:"size:50"`
	MemberSSN           string     `json:"memberSSN" gorm:"column:member_ssn;size:50"`
	SpouseSSN           string     `json:"spouseSSN" gorm:"column:spouse_ssn;size:50"`
	LocatedDate         *Date      `json:"locatedDate"`
	Source              string     `json:"source" gorm:"size:255"`
	LocationCost        string     `json:"locationCost" gorm:"size:50"`
	GraduationYear      string     `json:"graduationYear" gorm:"size:20"`
	NcbGraduate         string     `json:"ncbGraduate" gorm:"size:255"`
	GradesAttended      string     `json:"gradesAttended" gorm:"size:100"`
	DatesAttended       string     `json:"datesAttended" gorm:"size:100"`
	OtherSchool1        string     `json:"otherSchool1" gorm:"size:255"`
	DatesGrades1        string     `json:"datesGrades1" gorm:"size:100"`
	OtherSchool2        string     `json:"otherSchool2" gorm:"size:255"`
	DatesGrades2        string     `json:"datesGrades2" gorm:"size:100"`
	OtherSchool3        string     `json:"otherSchool3" gorm:"size:255"`
	DatesGrades3        string     `json:"datesGrades3" gorm:"size:100"`
	ParentFather        string     `json:"parentFather" gorm:"size:255"`
	ParentMother        string     `json:"parentMother" gorm:"size:255"`
	ParentAddress       string     `json:"parentAddress" gorm:"size:255"`
	SentMRA             string     `json:"sentMRA" gorm:"column:sent_mra;size:255"`
	QuestionnaireDate   *Date      `json:"questionnaireDate"`
	QuestionnaireReturn string     `json:"questionnaireReturn" gorm:"size:255"`
	DateReturned        *Date      `json:"dateReturned"`
	DirectoryRequested  string     `json:"directoryRequested" gorm:"size:255"`
	AmountReceived      string     `json:"amountReceived" gorm:"size:50"`
	DirectorySent       *Date      `json:"directorySent"`
	MemberBio           string     `json:"memberBio" gorm:"type:text"`
	SpouseBio           string     `json:"spouseBio" gorm:"type:text"`
	NewBio              string     `json:"newBio" gorm:"size:255"`
	Comments            string     `json:"comments" gorm:"type:text"`
	ReunionAttended     string     `json:"reunionAttended" gorm:"size:255"`
	CreatedAt           time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt           time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// Event is a calendar entry. Display ordering puts upcoming events first,
// then events without a start date, then past events.
type Event struct {
	Id            int        `json:"id" gorm:"primaryKey;autoIncrement"`
	EventName     string     `json:"eventName" gorm:"size:255;not null"`
	EventSubtitle string     `json:"eventSubtitle" gorm:"size:255"`
	EventLoc      string     `json:"eventLoc" gorm:"size:255"`
	EventDatebeg  *Date      `json:"eventDatebeg"`
	EventDateend  *Date      `json:"eventDateend"`
	EventTime     string     `json:"eventTime" gorm:"size:100"`
	EventDesc     string     `json:"eventDesc" gorm:"type:text"`
	EventPhoto1   string     `json:"eventPhoto1" gorm:"size:255"`
	EventPhoto2   string     `json:"eventPhoto2" gorm:"size:255"`
	EventPhoto3   string     `json:"eventPhoto3" gorm:"size:255"`
	EventPhoto4   string     `json:"eventPhoto4" gorm:"size:255"`
	EventStatus   string     `json:"eventStatus" gorm:"size:50"`
	EventModdate  time.Time  `json:"eventModdate" gorm:"autoUpdateTime"`
	EventModuser  string     `json:"eventModuser" gorm:"size:255"`
	EventSortcode *int       `json:"eventSortcode"`
	CreatedAt     time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// DirectoryEntry is a business/organization style listing.
type DirectoryEntry struct {
	Id           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Position     string    `json:"position" gorm:"size:255"`
	Organization string    `json:"organization" gorm:"size:255"`
	Department   string    `json:"department" gorm:"size:255"`
	Address      string    `json:"address" gorm:"size:255"`
	City         string    `json:"city" gorm:"size:100"`
	State        string    `json:"state" gorm:"size:50"`
	ZipCode      string    `json:"zipCode" gorm:"size:20"`
	Country      string    `json:"country" gorm:"size:100"`
	Phone        string    `json:"phone" gorm:"size:50"`
	Email        string    `json:"email" gorm:"size:255"`
	Website      string    `json:"website" gorm:"size:255"`
	Category     string    `json:"category" gorm:"size:100"`
	SubCategory  string    `json:"subCategory" gorm:"size:100"`
	Description  string    `json:"description" gorm:"type:text"`
	Notes        string    `json:"notes" gorm:"type:text"`
	SortOrder    *int      `json:"sortOrder"`
	IsActive     *bool     `json:"isActive" gorm:"default:true"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName keeps the table name the import tooling and SQL snippets expect.
func (DirectoryEntry) TableName() string {
	return "directories"
}
