package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferCategory(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", "Unknown"},
		{"FACULTY", "Faculty"},
		{"FACULTY-EMERITUS", "Faculty"},
		{"student", "Student"},
		{"Staff Member", "Staff"},
		{"dependent child", "Dependent"},
		{"Volunteer", "VOLUNTEER"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, InferCategory(tc.raw), "raw %q", tc.raw)
	}
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "John Q Smith", fullName("John", "Q", "Smith", ""))
	assert.Equal(t, "John Smith Smitty", fullName("John", "", "Smith (Smitty)", ""))
	assert.Equal(t, "Mary Brown", fullName("Mary", "", "", "Brown"))
	assert.Equal(t, "Jones", fullName("", "", "", "Jones"))
	assert.Equal(t, "Unknown", fullName("", "", "", ""))
}

func TestFullAddress(t *testing.T) {
	assert.Equal(t, "12 Main St\nApt 4", fullAddress("12 Main St", "", "Apt 4"))
	assert.Equal(t, "", fullAddress("", "", ""))
}

func TestIsActiveStatus(t *testing.T) {
	assert.True(t, isActiveStatus(""))
	assert.True(t, isActiveStatus("Located"))
	assert.False(t, isActiveStatus("NOT LOCATED"))
	assert.False(t, isActiveStatus("Deceased 2010"))
}

func TestBuildDescription(t *testing.T) {
	desc := buildDescription(map[string]string{
		"gradyr":      "1960",
		"grattend":    "9-12",
		"datesattend": "",
		"oschool1":    "Wheelus High",
		"datesgrade1": "1955-1957",
	})
	assert.Equal(t,
		"Graduation Year: 1960\n"+
			"Grades Attended: 9-12\n"+
			"Dates Attended: Unknown\n\n"+
			"Other School: Wheelus High\n"+
			"Dates/Grades: 1955-1957",
		desc)

	assert.Equal(t, "", buildDescription(map[string]string{}))
}
