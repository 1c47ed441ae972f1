package entities

// Book is a catalogue entry. No two books share the same (title, author)
// pair; the composite unique index backs the duplicate check in the
// books repository.
type Book struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Title     string  `gorm:"column:title;size:512;not null;uniqueIndex:idx_books_title_author" json:"title"`
	Author    string  `gorm:"column:author;size:256;not null;uniqueIndex:idx_books_title_author" json:"author"`
	RatingAvg float64 `gorm:"column:rating_avg;default:0" json:"rating_avg"`
}

// Review is a user's review of a book. The unique index spans every
// user-supplied column: an exact repeat of an earlier submission is
// rejected, but a user may post several distinct reviews for one book.
type Review struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	AccountID   uint    `gorm:"column:account_id;index;uniqueIndex:idx_reviews_content" json:"account_id"`
	BookID      uint    `gorm:"column:book_id;index;uniqueIndex:idx_reviews_content" json:"book_id"`
	RatingScore float64 `gorm:"column:rating_score;uniqueIndex:idx_reviews_content" json:"rating_score"`
	ReviewTitle string  `gorm:"column:review_title;size:256;uniqueIndex:idx_reviews_content" json:"review_title"`
	ReviewText  string  `gorm:"column:review_text;size:2048;uniqueIndex:idx_reviews_content" json:"review_text"`
}
