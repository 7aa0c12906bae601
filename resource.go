package salaw

// Category tags a legal document's subject area.
type Category string

// Category constants cover the subject areas of the document catalog.
const (
	CategoryConstitutional Category = "constitutional"
	CategoryCriminal       Category = "criminal"
	CategoryInvestigation  Category = "investigation"
	CategoryCyber          Category = "cyber"
	CategoryFinancial      Category = "financial"
	CategoryInternet       Category = "internet"
	CategoryMilitary       Category = "military"
)

// Categories lists every valid category.
func Categories() []Category {
	return []Category{
		CategoryConstitutional,
		CategoryCriminal,
		CategoryInvestigation,
		CategoryCyber,
		CategoryFinancial,
		CategoryInternet,
		CategoryMilitary,
	}
}

// Resource identifies one legal document in the catalog. Resources are
// immutable; identity is the local Filename.
type Resource struct {
	// Name is the human-readable document title.
	Name string `json:"name"`

	// SourceURL is where the document can be downloaded from.
	SourceURL string `json:"sourceUrl"`

	// Filename is the name of the cached file on disk, unique per resource.
	Filename string `json:"filename"`

	// Category is the document's subject area.
	Category Category `json:"category"`
}

// Validate returns an error if the resource contains invalid fields.
func (r *Resource) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "resource name required")
	}
	if r.SourceURL == "" {
		return Errorf(EINVALID, "resource source URL required")
	}
	if r.Filename == "" {
		return Errorf(EINVALID, "resource filename required")
	}
	if r.Category == "" {
		return Errorf(EINVALID, "resource category required")
	}
	return nil
}

// Catalog is a static list of resources.
type Catalog []Resource

// All returns every resource in the catalog.
func (c Catalog) All() []Resource {
	return append([]Resource(nil), c...)
}

// ByCategory returns the resources tagged with the given category.
func (c Catalog) ByCategory(cat Category) []Resource {
	var out []Resource
	for _, r := range c {
		if r.Category == cat {
			out = append(out, r)
		}
	}
	return out
}

// DefaultCatalog returns the fixed set of South African legislative
// documents the assistant works from.
func DefaultCatalog() Catalog {
	return Catalog{
		// Constitutional law
		{
			Name:      "Constitution of South Africa, 1996",
			SourceURL: "https://www.justice.gov.za/legislation/constitution/SAConstitution-web-eng.pdf",
			Filename:  "constitution.pdf",
			Category:  CategoryConstitutional,
		},
		{
			Name:      "Bill of Rights (Constitution Chapter 2)",
			SourceURL: "https://www.gov.za/sites/default/files/gcis_document/201506/38859rg10798gon608.pdf",
			Filename:  "bill_of_rights.pdf",
			Category:  CategoryConstitutional,
		},

		// Criminal law and procedure
		{
			Name:      "Criminal Procedure Act 51 of 1977",
			SourceURL: "https://www.gov.za/sites/default/files/gcis_document/201501/38316act51of1977s.pdf",
			Filename:  "criminal_procedure_act.pdf",
			Category:  CategoryCriminal,
		},
		{
			Name:      "Sexual Offences Act 32 of 2007",
			SourceURL: "https://www.gov.za/sites/default/files/gcis_document/201409/a32-07.pdf",
			Filename:  "sexual_offences_act.pdf",
			Category:  CategoryCriminal,
		},

		// Investigation and intelligence
		{
			Name:      "Intelligence Services Act 65 of 2002",
			SourceURL: "https://www.gov.za/sites/default/files/gcis_document/201409/a65-02.pdf",
			Filename:  "intelligence_services_act.pdf",
			Category:  CategoryInvestigation,
		},
		{
			Name:      "Criminal Law (Forensic Procedures) Amendment Act 37 of 2013",
			SourceURL: "https://www.gov.za/sites/default/files/gcis_document/201409/a37-13.pdf",
			Filename:  "dna_act.pdf",
			Category:  CategoryInvestigation,
		},
		{
			Name:      "Protected Disclosures Act 26 of 2000",
			SourceURL: "https://www.gov.za/sites/default/files/gcis_document/201409/a26-00.pdf",
			Filename:  "protected_disclosures_act.pdf",
			Category:  CategoryInvestigation,
		},

		// Cyber and digital laws
		{
			Name:      "Cybercrimes Act 19 of 2020",
			SourceURL: "https://www.gov.za/sites/default/files/gcis_document/202105/44351gon1013.pdf",
			Filename:  "cybercrimes_act.pdf",
			Category:  CategoryCyber,
		},
		{
			Name:      "Electronic Communications and Transactions Act 25 of 2002",
			SourceURL: "https://www.gov.za/sites/default/files/gcis_document/201409/a25-02.pdf",
			Filename:  "electronic_communications_act.pdf",
			Category:  CategoryCyber,
		},
		{
			Name:      "Regulation of Interception of Communications Act 70 of 2002",
			SourceURL: "https://www.gov.za/sites/default/files/gcis_document/201409/a70-02.pdf",
			Filename:  "rica_act.pdf",
			Category:  CategoryCyber,
		},
		{
			Name:      "Protection of Personal Information Act 4 of 2013",
			SourceURL: "https://www.gov.za/sites/default/files/gcis_document/201409/a4-13.pdf",
			Filename:  "popi_act.pdf",
			Category:  CategoryCyber,
		},

		// Financial and fraud laws
		{
			Name:      "Prevention and Combating of Corrupt Activities Act 12 of 2004",
			SourceURL: "https://www.gov.za/sites/default/files/gcis_document/201409/a12-04.pdf",
			Filename:  "prevention_of_corruption_act.pdf",
			Category:  CategoryFinancial,
		},
		{
			Name:      "Financial Intelligence Centre Act 38 of 2001",
			SourceURL: "https://www.gov.za/sites/default/files/gcis_document/201409/a38-01.pdf",
			Filename:  "fica_act.pdf",
			Category:  CategoryFinancial,
		},
		{
			Name:      "Prevention of Organised Crime Act 121 of 1998",
			SourceURL: "https://www.gov.za/sites/default/files/gcis_document/201409/a121-98.pdf",
			Filename:  "poca_act.pdf",
			Category:  CategoryFinancial,
		},

		// Social media and internet laws
		{
			Name:      "Films and Publications Amendment Act 3 of 2009",
			SourceURL: "https://www.gov.za/sites/default/files/gcis_document/201409/a3-09.pdf",
			Filename:  "films_publications_act.pdf",
			Category:  CategoryInternet,
		},
		{
			Name:      "Electronic Communications Act 36 of 2005",
			SourceURL: "https://www.gov.za/sites/default/files/gcis_document/201409/a36-05.pdf",
			Filename:  "electronic_comm_act.pdf",
			Category:  CategoryInternet,
		},

		// Military and defence
		{
			Name:      "Defence Act 42 of 2002",
			SourceURL: "https://www.gov.za/sites/default/files/gcis_document/201409/a42-02.pdf",
			Filename:  "defence_act.pdf",
			Category:  CategoryMilitary,
		},
	}
}
