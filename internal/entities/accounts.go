package entities

// User is an account in the account store. Username and email are each
// globally unique; the password is stored only as a bcrypt digest.
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Username       string `gorm:"column:user_name;uniqueIndex;size:100;not null" json:"username"`
	Email          string `gorm:"column:email;uniqueIndex;size:255;not null" json:"email"`
	HashedPassword string `gorm:"column:hashed_password;size:100;not null" json:"-"`
}

// WishlistEntry links an account to a book it wants. AccountID references
// a user in the account store and BookID a book in the catalog store;
// the stores are independent, so neither reference is a real foreign key.
type WishlistEntry struct {
	ID        uint `gorm:"primaryKey" json:"-"`
	AccountID uint `gorm:"column:account_id;index;uniqueIndex:idx_wishlist_account_book" json:"account_id"`
	BookID    uint `gorm:"column:book_id;uniqueIndex:idx_wishlist_account_book" json:"book_id"`
}
