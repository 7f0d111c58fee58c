package models

// Link is one auxiliary resource shown on a class description.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Registrar link templates. The class number is appended verbatim.
const (
	catalogSearchURL = "http://student.mit.edu/catalog/search.cgi?search="
	evalsSearchURL   = "https://edu-apps.mit.edu/ose-rpt/subjectEvaluationSearch.htm?search=Search&subjectCode="
)

// courseLinks maps a top-level course prefix to supplementary links appended
// to every class under it. This is an open policy table: departments are
// added via RegisterCourseLinks, not by editing derivation logic.
var courseLinks = map[string][]Link{
	"6": {
		{Label: "HKN Underground Guide", URL: "https://underground-guide.mit.edu/"},
	},
	"18": {
		{Label: "Math Department Subjects", URL: "https://math.mit.edu/academics/classes.html"},
	},
}

// RegisterCourseLinks appends supplementary links for a course prefix.
func RegisterCourseLinks(course string, links ...Link) {
	courseLinks[course] = append(courseLinks[course], links...)
}

// linksFor assembles the ordered link list for a record: an optional
// more-info link when the record carries a URL, the fixed catalog and evals
// links, then any course-prefix extras.
func linksFor(raw *RawClass) []Link {
	var links []Link
	if raw.URL != "" {
		links = append(links, Link{Label: "More Info", URL: raw.URL})
	}
	links = append(links,
		Link{Label: "Course Catalog", URL: catalogSearchURL + raw.Number},
		Link{Label: "Subject Evaluations", URL: evalsSearchURL + raw.Number},
	)
	links = append(links, courseLinks[raw.Course]...)
	return links
}
