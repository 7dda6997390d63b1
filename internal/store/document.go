package store

import (
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"maps"
	"slices"
)

// The persisted document is a fixed XML envelope:
//
//	<cryptex>
//	  <store>
//	    <entry name="..."> <username>...</username> ... </entry>
//	    <container name="..."> entry*, container* </container>
//	  </store>
//	</cryptex>
//
// Every name and field value is base64-encoded, so arbitrary text (any
// script, even characters that are illegal in the name alphabet) travels
// without needing escaping rules of its own. The encoding carries no
// secrecy; that comes from encrypting the whole document.

type xmlEntry struct {
	Name     string `xml:"name,attr"`
	Username string `xml:"username,omitempty"`
	Password string `xml:"password,omitempty"`
	URL      string `xml:"url,omitempty"`
}

type xmlContainer struct {
	Name       string         `xml:"name,attr,omitempty"`
	Entries    []xmlEntry     `xml:"entry"`
	Containers []xmlContainer `xml:"container"`
}

type xmlDocument struct {
	XMLName xml.Name     `xml:"cryptex"`
	Store   xmlContainer `xml:"store"`
}

func encodeText(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func decodeText(s string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("malformed base64 text %q: %w", s, err)
	}
	return string(raw), nil
}

// encodeContainer converts a container subtree to its document form:
// entries first, then sub-containers, each sorted by name so the output is
// deterministic. Absent entry fields are omitted entirely; the codec never
// emits an empty field marker.
func encodeContainer(c *Container, name string) xmlContainer {
	node := xmlContainer{}
	if name != "" {
		node.Name = encodeText(name)
	}
	for _, entryName := range slices.Sorted(maps.Keys(c.entries)) {
		e := c.entries[entryName]
		xe := xmlEntry{Name: encodeText(entryName)}
		if e.Username() != "" {
			xe.Username = encodeText(e.Username())
		}
		if e.Password() != "" {
			xe.Password = encodeText(e.Password())
		}
		if e.URL() != "" {
			xe.URL = encodeText(e.URL())
		}
		node.Entries = append(node.Entries, xe)
	}
	for _, childName := range slices.Sorted(maps.Keys(c.containers)) {
		node.Containers = append(node.Containers, encodeContainer(c.containers[childName], childName))
	}
	return node
}

// decodeContainer rebuilds a container subtree from its document form.
// Children are inserted through the normal add operations, so a document
// carrying duplicate or illegally named children fails the same way a live
// mutation would. A node with no recognized children is a valid empty
// container.
func decodeContainer(node *xmlContainer) (*Container, error) {
	c := NewContainer()
	for i := range node.Entries {
		xe := &node.Entries[i]
		name, err := decodeText(xe.Name)
		if err != nil {
			return nil, fmt.Errorf("entry name: %w", err)
		}
		e := &Entry{}
		if xe.Username != "" {
			if e.username, err = decodeText(xe.Username); err != nil {
				return nil, fmt.Errorf("entry %q username: %w", name, err)
			}
		}
		if xe.Password != "" {
			if e.password, err = decodeText(xe.Password); err != nil {
				return nil, fmt.Errorf("entry %q password: %w", name, err)
			}
		}
		if xe.URL != "" {
			if e.url, err = decodeText(xe.URL); err != nil {
				return nil, fmt.Errorf("entry %q url: %w", name, err)
			}
		}
		if err := c.AddEntry(e, name); err != nil {
			return nil, err
		}
	}
	for i := range node.Containers {
		childNode := &node.Containers[i]
		name := ""
		if childNode.Name != "" {
			var err error
			if name, err = decodeText(childNode.Name); err != nil {
				return nil, fmt.Errorf("container name: %w", err)
			}
		}
		child, err := decodeContainer(childNode)
		if err != nil {
			return nil, err
		}
		if err := c.AddContainer(child, name); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Serialize encodes the store's tree as the persisted document. The result
// is the pre-encryption plaintext; it must round-trip losslessly through
// Parse for all names and field values.
func (s *Store) Serialize() ([]byte, error) {
	doc := xmlDocument{Store: encodeContainer(s.root, "")}
	out, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize store: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

func parseDocument(document []byte) (*Container, error) {
	var doc xmlDocument
	if err := xml.Unmarshal(document, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse store document: %w", err)
	}
	return decodeContainer(&doc.Store)
}
