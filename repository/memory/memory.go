// Package memory is an in-process implementation of the repository
// contracts. It backs the service tests, which exercise the full rule
// engine without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/carolinaIbarra2/gestionBiblioteca/model"
	authorrepo "github.com/carolinaIbarra2/gestionBiblioteca/repository/author"
	bookrepo "github.com/carolinaIbarra2/gestionBiblioteca/repository/book"
	categoryrepo "github.com/carolinaIbarra2/gestionBiblioteca/repository/category"
	loanrepo "github.com/carolinaIbarra2/gestionBiblioteca/repository/loan"
	userrepo "github.com/carolinaIbarra2/gestionBiblioteca/repository/user"
)

type Store struct {
	mu         sync.RWMutex
	seq        int64
	authors    map[int64]model.Author
	books      map[int64]model.Book
	categories map[int64]model.Category
	users      map[int64]model.User
	loans      map[int64]model.Loan
	bookCats   map[int64][]int64 // book id -> category ids, link order

	Authors    *AuthorRepo
	Books      *BookRepo
	Categories *CategoryRepo
	Users      *UserRepo
	Loans      *LoanRepo
}

func NewStore() *Store {
	s := &Store{
		authors:    make(map[int64]model.Author),
		books:      make(map[int64]model.Book),
		categories: make(map[int64]model.Category),
		users:      make(map[int64]model.User),
		loans:      make(map[int64]model.Loan),
		bookCats:   make(map[int64][]int64),
	}
	s.Authors = &AuthorRepo{s: s}
	s.Books = &BookRepo{s: s}
	s.Categories = &CategoryRepo{s: s}
	s.Users = &UserRepo{s: s}
	s.Loans = &LoanRepo{s: s}
	return s
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ----- authors -----

type AuthorRepo struct{ s *Store }

func (r *AuthorRepo) NameExists(_ context.Context, name string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.authors {
		if a.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *AuthorRepo) Create(_ context.Context, a *model.Author) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a.ID = r.s.nextID()
	r.s.authors[a.ID] = *a
	return nil
}

func (r *AuthorRepo) ByID(_ context.Context, id int64) (*model.Author, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.authors[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AuthorRepo) Update(_ context.Context, a *model.Author) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.authors[a.ID]; ok {
		r.s.authors[a.ID] = *a
	}
	return nil
}

func (r *AuthorRepo) ListAll(_ context.Context) ([]model.Author, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.Author
	for _, id := range sortedIDs(r.s.authors) {
		out = append(out, r.s.authors[id])
	}
	return out, nil
}

func (r *AuthorRepo) ListWithBooks(_ context.Context) ([]model.AuthorBooks, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.AuthorBooks
	for _, id := range sortedIDs(r.s.authors) {
		ab := model.AuthorBooks{Author: r.s.authors[id], Books: []model.Book{}}
		for _, bid := range sortedIDs(r.s.books) {
			b := r.s.books[bid]
			if b.AuthorID != nil && *b.AuthorID == id {
				ab.Books = append(ab.Books, b)
			}
		}
		out = append(out, ab)
	}
	return out, nil
}

func (r *AuthorRepo) CountBooks(_ context.Context, authorID int64) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, b := range r.s.books {
		if b.AuthorID != nil && *b.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

func (r *AuthorRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.authors, id)
	return nil
}

// ----- books -----

type BookRepo struct{ s *Store }

func (r *BookRepo) TitleExists(_ context.Context, title string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, b := range r.s.books {
		if b.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (r *BookRepo) Create(_ context.Context, b *model.Book, categoryID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b.ID = r.s.nextID()
	r.s.books[b.ID] = *b
	r.s.bookCats[b.ID] = append(r.s.bookCats[b.ID], categoryID)
	return nil
}

func (r *BookRepo) ByID(_ context.Context, id int64) (*model.Book, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.books[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *BookRepo) ByTitle(_ context.Context, title string) (*model.Book, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range sortedIDs(r.s.books) {
		if b := r.s.books[id]; b.Title == title {
			return &b, nil
		}
	}
	return nil, nil
}

func (r *BookRepo) Detail(_ context.Context, id int64) (*model.BookDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.books[id]
	if !ok {
		return nil, nil
	}
	d := r.s.detailLocked(b)
	return &d, nil
}

func (r *BookRepo) List(_ context.Context) ([]model.BookDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.BookDetail
	for _, id := range sortedIDs(r.s.books) {
		out = append(out, r.s.detailLocked(r.s.books[id]))
	}
	return out, nil
}

func (s *Store) detailLocked(b model.Book) model.BookDetail {
	d := model.BookDetail{Book: b, Categories: []model.Category{}}
	if b.AuthorID != nil {
		if a, ok := s.authors[*b.AuthorID]; ok {
			d.Author = &a
		}
	}
	for _, cid := range s.bookCats[b.ID] {
		if c, ok := s.categories[cid]; ok {
			d.Categories = append(d.Categories, c)
		}
	}
	return d
}

func (r *BookRepo) ListWithLoans(_ context.Context) ([]model.BookLoans, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.BookLoans
	for _, id := range sortedIDs(r.s.books) {
		bl := model.BookLoans{Book: r.s.books[id], Loans: []model.BookLoan{}}
		for _, lid := range sortedIDs(r.s.loans) {
			l := r.s.loans[lid]
			if l.BookID != nil && *l.BookID == id {
				bl.Loans = append(bl.Loans, model.BookLoan{StartDate: l.StartDate, DueDate: l.DueDate})
			}
		}
		out = append(out, bl)
	}
	return out, nil
}

func (r *BookRepo) Update(_ context.Context, id int64, quantity int, authorID *int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.books[id]
	if !ok {
		return nil
	}
	b.Quantity = quantity
	b.AuthorID = authorID
	r.s.books[id] = b
	return nil
}

// ----- categories -----

type CategoryRepo struct{ s *Store }

func (r *CategoryRepo) NameExists(_ context.Context, name string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.categories {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *CategoryRepo) Create(_ context.Context, c *model.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.nextID()
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepo) ByID(_ context.Context, id int64) (*model.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CategoryRepo) ByName(_ context.Context, name string) (*model.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range sortedIDs(r.s.categories) {
		if c := r.s.categories[id]; c.Name == name {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *CategoryRepo) UpdateDescription(_ context.Context, id int64, description string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.categories[id]; ok {
		c.Description = description
		r.s.categories[id] = c
	}
	return nil
}

func (r *CategoryRepo) ListAll(_ context.Context) ([]model.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.Category
	for _, id := range sortedIDs(r.s.categories) {
		out = append(out, r.s.categories[id])
	}
	return out, nil
}

func (r *CategoryRepo) CountBooks(_ context.Context, categoryID int64) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, cids := range r.s.bookCats {
		for _, cid := range cids {
			if cid == categoryID {
				n++
			}
		}
	}
	return n, nil
}

func (r *CategoryRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.categories, id)
	return nil
}

// ----- users -----

type UserRepo struct{ s *Store }

func (r *UserRepo) NameExists(_ context.Context, name string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepo) Create(_ context.Context, u *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u.ID = r.s.nextID()
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) ByID(_ context.Context, id int64) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) ByName(_ context.Context, name string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range sortedIDs(r.s.users) {
		if u := r.s.users[id]; u.Name == name {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(_ context.Context, u *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; ok {
		r.s.users[u.ID] = *u
	}
	return nil
}

func (r *UserRepo) ListAll(_ context.Context) ([]model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.User
	for _, id := range sortedIDs(r.s.users) {
		out = append(out, r.s.users[id])
	}
	return out, nil
}

func (r *UserRepo) DetailWithLoans(_ context.Context, id int64) (*model.UserDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	d := &model.UserDetail{User: u, Loans: []model.UserLoan{}}
	for _, lid := range sortedIDs(r.s.loans) {
		l := r.s.loans[lid]
		if l.UserID == nil || *l.UserID != id {
			continue
		}
		ul := model.UserLoan{StartDate: l.StartDate, DueDate: l.DueDate}
		if l.BookID != nil {
			if b, ok := r.s.books[*l.BookID]; ok {
				ul.BookTitle = b.Title
			}
		}
		d.Loans = append(d.Loans, ul)
	}
	return d, nil
}

func (r *UserRepo) CountLoans(_ context.Context, userID int64) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, l := range r.s.loans {
		if l.UserID != nil && *l.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *UserRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id)
	return nil
}

// ----- loans -----

type LoanRepo struct{ s *Store }

func (r *LoanRepo) Create(_ context.Context, l *model.Loan) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l.ID = r.s.nextID()
	r.s.loans[l.ID] = *l
	return nil
}

func (r *LoanRepo) ByID(_ context.Context, id int64) (*model.Loan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	l, ok := r.s.loans[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *LoanRepo) UpdateDates(_ context.Context, id int64, start, due time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if l, ok := r.s.loans[id]; ok {
		l.StartDate = start
		l.DueDate = due
		r.s.loans[id] = l
	}
	return nil
}

func (r *LoanRepo) List(_ context.Context) ([]model.LoanDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.LoanDetail
	for _, id := range sortedIDs(r.s.loans) {
		l := r.s.loans[id]
		d := model.LoanDetail{Loan: l}
		if l.BookID != nil {
			if b, ok := r.s.books[*l.BookID]; ok {
				d.BookTitle = b.Title
			}
		}
		if l.UserID != nil {
			if u, ok := r.s.users[*l.UserID]; ok {
				d.UserName = u.Name
				d.UserEmail = u.Email
			}
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *LoanRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.loans, id)
	return nil
}

var (
	_ authorrepo.Repo   = (*AuthorRepo)(nil)
	_ bookrepo.Repo     = (*BookRepo)(nil)
	_ categoryrepo.Repo = (*CategoryRepo)(nil)
	_ userrepo.Repo     = (*UserRepo)(nil)
	_ loanrepo.Repo     = (*LoanRepo)(nil)
)
