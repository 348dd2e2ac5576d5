package blogwebhook

import "testing"

func TestResolvePayloadObject(t *testing.T) {
	payload, _, shape, err := ResolvePayload([]byte(`{"title":"T","content":"C"}`))
	if err != nil {
		t.Fatal(err)
	}
	if shape != ShapeObject {
		t.Errorf("shape = %v, want object", shape)
	}
	if payload["title"] != "T" {
		t.Errorf("title = %v", payload["title"])
	}
}

func TestResolvePayloadArray(t *testing.T) {
	payload, top, shape, err := ResolvePayload([]byte(`[{"title":"T","content":"C"},{"ignored":true}]`))
	if err != nil {
		t.Fatal(err)
	}
	if shape != ShapeArray {
		t.Errorf("shape = %v, want array", shape)
	}
	if payload["title"] != "T" {
		t.Error("first array element should become the effective payload")
	}
	if _, ok := top.([]interface{}); !ok {
		t.Error("top should remain the raw array")
	}
}

func TestResolvePayloadDataArray(t *testing.T) {
	payload, _, shape, err := ResolvePayload([]byte(`{"data":[{"title":"T","content":"C"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if shape != ShapeDataArray {
		t.Errorf("shape = %v, want data_array", shape)
	}
	if payload["title"] != "T" {
		t.Error("data[0] should become the effective payload")
	}
}

func TestResolvePayloadOutputJSON(t *testing.T) {
	raw := []byte("{\"output\":\"Here it is:\\n```json\\n{\\\"title\\\":\\\"T\\\",\\\"content\\\":\\\"C\\\"}\\n```\\ndone\"}")
	payload, _, shape, err := ResolvePayload(raw)
	if err != nil {
		t.Fatal(err)
	}
	if shape != ShapeOutputJSON {
		t.Errorf("shape = %v, want output_json", shape)
	}
	if payload["title"] != "T" {
		t.Errorf("title = %v, want T", payload["title"])
	}
}

func TestResolvePayloadErrors(t *testing.T) {
	cases := []string{
		`not json`,
		`[]`,
		`["just a string"]`,
		`42`,
	}
	for _, raw := range cases {
		if _, _, _, err := ResolvePayload([]byte(raw)); err == nil {
			t.Errorf("ResolvePayload(%q) should fail", raw)
		}
	}
}

func TestResolvePayloadPlainObjectWithUnrelatedData(t *testing.T) {
	// a data array that does not look like a post must not hijack the payload
	payload, _, shape, err := ResolvePayload([]byte(`{"title":"T","content":"C","data":[{"count":3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if shape != ShapeObject {
		t.Errorf("shape = %v, want object", shape)
	}
	if payload["title"] != "T" {
		t.Error("top-level object should stay effective")
	}
}
