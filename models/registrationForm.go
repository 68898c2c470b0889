package models

// RegistrationForm is the flat field set of the registration form, as
// submitted via multipart or urlencoded body. Checkbox fields carry the
// raw value ("on" when ticked); everything else is a plain string.
type RegistrationForm struct {
	// Personal information
	FirstName     string `form:"firstName" json:"firstName"`
	LastName      string `form:"lastName" json:"lastName"`
	DateOfBirth   string `form:"dateOfBirth" json:"dateOfBirth"`
	Gender        string `form:"gender" json:"gender"`
	MaritalStatus string `form:"maritalStatus" json:"maritalStatus"`

	// Contact information
	MobileNo   string `form:"mobileNo" json:"mobileNo"`
	Email      string `form:"email" json:"email"`
	HouseNo    string `form:"houseNo" json:"houseNo"`
	StreetName string `form:"streetName" json:"streetName"`
	City       string `form:"city" json:"city"`
	State      string `form:"state" json:"state"`
	LocalGovt  string `form:"localGovt" json:"localGovt"`
	Country    string `form:"country" json:"country"`

	// Social media
	Instagram       string `form:"instagram" json:"instagram"`
	InstagramHandle string `form:"instagramHandle" json:"instagramHandle"`
	Twitter         string `form:"twitter" json:"twitter"`
	TwitterHandle   string `form:"twitterHandle" json:"twitterHandle"`
	Tiktok          string `form:"tiktok" json:"tiktok"`
	TiktokHandle    string `form:"tiktokHandle" json:"tiktokHandle"`

	// Emergency contact
	EmergencyName         string `form:"emergencyName" json:"emergencyName"`
	EmergencyRelationship string `form:"emergencyRelationship" json:"emergencyRelationship"`
	EmergencyPhone        string `form:"emergencyPhone" json:"emergencyPhone"`

	// Professional information
	ProfessionalStatus string `form:"professionalStatus" json:"professionalStatus"`
	Profession         string `form:"profession" json:"profession"`
	WorkplaceName      string `form:"workplaceName" json:"workplaceName"`
	Position           string `form:"position" json:"position"`
	ExperienceDuration string `form:"experienceDuration" json:"experienceDuration"`
	University         string `form:"university" json:"university"`
	CurrentLevel       string `form:"currentLevel" json:"currentLevel"`
	NyscStatus         string `form:"nyscStatus" json:"nyscStatus"`
	StateOfPosting     string `form:"stateOfPosting" json:"stateOfPosting"`
	Certifications     string `form:"certifications" json:"certifications"`
	Skills             string `form:"skills" json:"skills"`

	// Church involvement
	IsAvailableForSupport string `form:"isAvailableForSupport" json:"isAvailableForSupport"`
	SupportArea           string `form:"supportArea" json:"supportArea"`
	IsEntrepreneur        string `form:"isEntrepreneur" json:"isEntrepreneur"`
	BusinessType          string `form:"businessType" json:"businessType"`
}

// FieldValue returns the submitted value for a form field name. The
// validation rule tables look fields up by name through this.
func (f *RegistrationForm) FieldValue(name string) string {
	switch name {
	case "firstName":
		return f.FirstName
	case "lastName":
		return f.LastName
	case "dateOfBirth":
		return f.DateOfBirth
	case "gender":
		return f.Gender
	case "maritalStatus":
		return f.MaritalStatus
	case "mobileNo":
		return f.MobileNo
	case "email":
		return f.Email
	case "houseNo":
		return f.HouseNo
	case "streetName":
		return f.StreetName
	case "city":
		return f.City
	case "state":
		return f.State
	case "localGovt":
		return f.LocalGovt
	case "country":
		return f.Country
	case "emergencyName":
		return f.EmergencyName
	case "emergencyRelationship":
		return f.EmergencyRelationship
	case "emergencyPhone":
		return f.EmergencyPhone
	case "professionalStatus":
		return f.ProfessionalStatus
	case "profession":
		return f.Profession
	case "workplaceName":
		return f.WorkplaceName
	case "position":
		return f.Position
	case "experienceDuration":
		return f.ExperienceDuration
	case "university":
		return f.University
	case "currentLevel":
		return f.CurrentLevel
	case "nyscStatus":
		return f.NyscStatus
	case "stateOfPosting":
		return f.StateOfPosting
	default:
		return ""
	}
}

// PlatformEntry reports the checkbox value and handle submitted for a
// social media platform.
func (f *RegistrationForm) PlatformEntry(platform string) (checked string, handle string) {
	switch platform {
	case PlatformInstagram:
		return f.Instagram, f.InstagramHandle
	case PlatformTwitter:
		return f.Twitter, f.TwitterHandle
	case PlatformTiktok:
		return f.Tiktok, f.TiktokHandle
	default:
		return "", ""
	}
}
