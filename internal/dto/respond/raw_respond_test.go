package respond

import "testing"

func TestEnvelopeBestEffort(t *testing.T) {
	r := &RawRespond{StatusCode: 200, Body: []byte(`{"code":1000,"msg":"success","data":{"access_token":"x"}}`)}
	env, ok := r.Envelope()
	if !ok {
		t.Fatal("expected envelope to parse")
	}
	if string(env.Code) != "1000" || env.Msg != "success" || env.Success != nil {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	html := &RawRespond{StatusCode: 502, Body: []byte("<html>bad gateway</html>")}
	if _, ok := html.Envelope(); ok {
		t.Fatal("html body must not parse as envelope")
	}
	if html.OK() {
		t.Fatal("502 is not OK")
	}
	if html.Text() != "<html>bad gateway</html>" {
		t.Fatalf("Text() = %q", html.Text())
	}
}
