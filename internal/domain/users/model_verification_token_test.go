package users

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

func TestVerificationTokenUniquePerUserAndType(t *testing.T) {
	s, err := schema.Parse(&VerificationToken{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}

	idx, ok := s.ParseIndexes()["idx_verification_user_type"]
	if !ok {
		t.Fatal("composite index idx_verification_user_type not declared")
	}
	if idx.Class != "UNIQUE" {
		t.Errorf("index class = %q, want UNIQUE", idx.Class)
	}

	var fields []string
	for _, f := range idx.Fields {
		fields = append(fields, f.DBName)
	}
	if len(fields) != 2 || fields[0] != "user_id" || fields[1] != "type" {
		t.Errorf("index fields = %v, want [user_id type]", fields)
	}

	// user_id alone must not be unique, or a pending verify_email
	// token would block creating a password_reset one.
	for name, i := range s.ParseIndexes() {
		if name == "idx_verification_user_type" {
			continue
		}
		if len(i.Fields) == 1 && i.Fields[0].DBName == "user_id" && i.Class == "UNIQUE" {
			t.Errorf("user_id carries a standalone unique index")
		}
	}
}
