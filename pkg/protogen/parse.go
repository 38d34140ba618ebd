// Package protogen turns Wayland protocol XML into the generated message
// files of pkg/proto: one object-type singleton per interface and, for
// every request and event, a typed struct, a parser, a constructor and a
// builder, plus the registration glue.
package protogen

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// ArgType enumerates the Wayland argument encodings.
type ArgType int

const (
	ArgInt ArgType = iota
	ArgUint
	ArgFixed
	ArgObject
	ArgNewID
	ArgString
	ArgArray
	ArgFD
)

// ParseArgType maps an XML type attribute to its ArgType.
func ParseArgType(s string) (ArgType, error) {
	switch s {
	case "int":
		return ArgInt, nil
	case "uint":
		return ArgUint, nil
	case "fixed":
		return ArgFixed, nil
	case "object":
		return ArgObject, nil
	case "new_id":
		return ArgNewID, nil
	case "string":
		return ArgString, nil
	case "array":
		return ArgArray, nil
	case "fd":
		return ArgFD, nil
	default:
		return 0, fmt.Errorf("protogen: unknown arg type %q", s)
	}
}

// MsgKind distinguishes requests from events.
type MsgKind int

const (
	KindRequest MsgKind = iota
	KindEvent
)

// Arg is one argument of a message.
type Arg struct {
	Name string
	Type ArgType
	// Interface is the fixed interface of a new_id or object argument,
	// empty when the XML declares none. A new_id without an interface
	// expands to the (name, version, id) wire form.
	Interface string
}

// Msg is one request or event.
type Msg struct {
	Name       string
	Kind       MsgKind
	Opcode     uint16
	Destructor bool
	Args       []Arg
}

// Interface is one <interface> block.
type Interface struct {
	Name string
	Msgs []Msg
}

// Protocol is one parsed protocol XML file.
type Protocol struct {
	Name       string
	Interfaces []Interface
}

type xmlArg struct {
	Name      string `xml:"name,attr"`
	Type      string `xml:"type,attr"`
	Interface string `xml:"interface,attr"`
}

type xmlMessage struct {
	Name string   `xml:"name,attr"`
	Type string   `xml:"type,attr"`
	Args []xmlArg `xml:"arg"`
}

type xmlInterface struct {
	Name     string       `xml:"name,attr"`
	Requests []xmlMessage `xml:"request"`
	Events   []xmlMessage `xml:"event"`
}

type xmlProtocol struct {
	XMLName    xml.Name       `xml:"protocol"`
	Name       string         `xml:"name,attr"`
	Interfaces []xmlInterface `xml:"interface"`
}

// ParseFile parses the protocol XML at path.
func ParseFile(path string) (*Protocol, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("protogen: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse parses protocol XML from r. Opcodes are assigned in declaration
// order, counted separately per direction.
func Parse(r io.Reader) (*Protocol, error) {
	var doc xmlProtocol
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("protogen: parse XML: %w", err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("protogen: protocol has no name attribute")
	}

	p := &Protocol{Name: doc.Name}
	for _, xi := range doc.Interfaces {
		iface := Interface{Name: xi.Name}

		for opcode, xm := range xi.Requests {
			msg, err := convertMessage(xm, KindRequest, uint16(opcode))
			if err != nil {
				return nil, fmt.Errorf("protogen: %s.%s: %w", xi.Name, xm.Name, err)
			}
			iface.Msgs = append(iface.Msgs, msg)
		}
		for opcode, xm := range xi.Events {
			msg, err := convertMessage(xm, KindEvent, uint16(opcode))
			if err != nil {
				return nil, fmt.Errorf("protogen: %s.%s: %w", xi.Name, xm.Name, err)
			}
			iface.Msgs = append(iface.Msgs, msg)
		}

		p.Interfaces = append(p.Interfaces, iface)
	}

	return p, nil
}

func convertMessage(xm xmlMessage, kind MsgKind, opcode uint16) (Msg, error) {
	msg := Msg{
		Name:       xm.Name,
		Kind:       kind,
		Opcode:     opcode,
		Destructor: xm.Type == "destructor",
	}

	for _, xa := range xm.Args {
		if xa.Name == "" {
			return Msg{}, fmt.Errorf("arg without a name")
		}
		t, err := ParseArgType(xa.Type)
		if err != nil {
			return Msg{}, err
		}
		msg.Args = append(msg.Args, Arg{
			Name:      xa.Name,
			Type:      t,
			Interface: xa.Interface,
		})
	}

	return msg, nil
}
