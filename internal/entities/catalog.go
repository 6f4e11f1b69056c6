package entities

// Category groups books for display. Categories are managed outside the HTTP
// surface (seeder or direct repository access); books only reference them.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;size:256" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}

// Book is a single catalog record. All descriptive fields are optional
// strings; an empty string means the field was left blank.
type Book struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Title         string `gorm:"size:512" json:"title"`
	Hepburn       string `gorm:"size:512" json:"hepburn"`
	Author        string `gorm:"size:256" json:"author"`
	PublishedDate string `gorm:"size:64;column:published_date" json:"published_date"`
	Release       string `gorm:"size:64;column:release" json:"release"`
	URL           string `gorm:"size:2048;column:url" json:"url"`
	Summary       string `gorm:"type:text" json:"summary"`

	// CategoryID is nullable; a book without a category stores NULL, never 0.
	CategoryID *uint     `gorm:"index" json:"category_id,omitempty"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Book) TableName() string {
	return "books"
}

// CategoryName returns the joined category name, or "" when the book has no
// category (or the category was not loaded). Value receiver so templates can
// call it on slice elements.
func (b Book) CategoryName() string {
	if b.Category == nil {
		return ""
	}
	return b.Category.Name
}

// InCategory reports whether the book references the given category id.
// Used by the form template to mark the selected dropdown option.
func (b Book) InCategory(id uint) bool {
	return b.CategoryID != nil && *b.CategoryID == id
}
