package protogen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
)

// msgBase exposes these selectors; a field whose generated name collides
// with one is renamed with a trailing underscore.
var reservedFieldNames = map[string]bool{
	"ObjectID":       true,
	"Opcode":         true,
	"MsgType":        true,
	"ObjectType":     true,
	"MsgName":        true,
	"IsDestructor":   true,
	"CreatedObjects": true,
	"NumConsumedFDs": true,
	"Args":           true,
	"Build":          true,
}

// goKeywords are renamed with a trailing underscore when an argument name
// maps onto one, e.g. a constructor parameter "interface" becomes
// "interface_".
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true,
	"var": true,
}

// paramName derives a constructor parameter name from a field name.
func paramName(goName string) string {
	name := lowerFirst(goName)
	if goKeywords[name] {
		name += "_"
	}
	return name
}

// CamelCase converts a snake_case protocol name to CamelCase:
// "zwlr_screencopy_manager_v1" becomes "ZwlrScreencopyManagerV1".
func CamelCase(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// FieldName converts an argument name to its exported Go field name,
// renaming collisions with the embedded message selectors.
func FieldName(arg string) string {
	name := CamelCase(arg)
	if reservedFieldNames[name] {
		name += "_"
	}
	return name
}

func typeName(iface string, m Msg) string {
	suffix := "Request"
	if m.Kind == KindEvent {
		suffix = "Event"
	}
	return CamelCase(iface) + CamelCase(m.Name) + suffix
}

func goType(t ArgType) string {
	switch t {
	case ArgInt:
		return "int32"
	case ArgUint, ArgObject, ArgNewID:
		return "uint32"
	case ArgFixed:
		return "wire.Fixed"
	case ArgString:
		return "string"
	case ArgArray:
		return "[]byte"
	case ArgFD:
		return "int"
	default:
		return "uint32"
	}
}

func readerCall(t ArgType) string {
	switch t {
	case ArgInt:
		return "Int32"
	case ArgUint, ArgObject, ArgNewID:
		return "Uint32"
	case ArgFixed:
		return "Fixed"
	case ArgString:
		return "String"
	case ArgArray:
		return "Array"
	case ArgFD:
		return "FD"
	default:
		return "Uint32"
	}
}

func builderCall(t ArgType) string {
	switch t {
	case ArgInt:
		return "PutInt32"
	case ArgUint, ArgObject, ArgNewID:
		return "PutUint32"
	case ArgFixed:
		return "PutFixed"
	case ArgString:
		return "PutString"
	case ArgArray:
		return "PutArray"
	case ArgFD:
		return "PutFD"
	default:
		return "PutUint32"
	}
}

// genField is one Go struct field derived from a protocol argument.
type genField struct {
	goName   string
	goType   string
	jsonName string
	read     string // ArgReader method
	write    string // MsgBuilder method
	// newIDInterface is the singleton a known-interface new_id creates.
	newIDInterface string
}

// expandArgs lowers protocol arguments to struct fields. A new_id without
// a fixed interface expands to the three wire-level fields.
func expandArgs(args []Arg) []genField {
	var fields []genField
	for _, a := range args {
		if a.Type == ArgNewID && a.Interface == "" {
			fields = append(fields,
				genField{
					goName:   FieldName(a.Name + "_interface"),
					goType:   "string",
					jsonName: a.Name + "_interface",
					read:     "String",
					write:    "PutString",
				},
				genField{
					goName:   FieldName(a.Name + "_version"),
					goType:   "uint32",
					jsonName: a.Name + "_version",
					read:     "Uint32",
					write:    "PutUint32",
				},
				genField{
					goName:   FieldName(a.Name),
					goType:   "uint32",
					jsonName: a.Name,
					read:     "Uint32",
					write:    "PutUint32",
				})
			continue
		}

		f := genField{
			goName:   FieldName(a.Name),
			goType:   goType(a.Type),
			jsonName: a.Name,
			read:     readerCall(a.Type),
			write:    builderCall(a.Type),
		}
		if a.Type == ArgNewID {
			f.newIDInterface = a.Interface
		}
		fields = append(fields, f)
	}
	return fields
}

// Generate emits the pkg/proto source file for one protocol.
func Generate(p *Protocol) ([]byte, error) {
	var b bytes.Buffer

	fmt.Fprintf(&b, "// Code generated by protogen from %s.xml. DO NOT EDIT.\n\n", p.Name)
	fmt.Fprintf(&b, "package proto\n\n")
	fmt.Fprintf(&b, "import \"wlmitm/pkg/wire\"\n\n")

	for _, iface := range p.Interfaces {
		emitInterface(&b, iface)
	}

	emitInit(&b, p)

	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("protogen: format generated source for %s: %w", p.Name, err)
	}
	return src, nil
}

func emitInterface(b *bytes.Buffer, iface Interface) {
	ifaceType := CamelCase(iface.Name)
	fmt.Fprintf(b, "// %s is the %s interface.\n", ifaceType, iface.Name)
	fmt.Fprintf(b, "var %s = NewObjectType(%q)\n\n", ifaceType, iface.Name)

	for _, m := range iface.Msgs {
		emitMsg(b, iface, m)
	}
}

func emitMsg(b *bytes.Buffer, iface Interface, m Msg) {
	tn := typeName(iface.Name, m)
	descName := lowerFirst(tn) + "Desc"
	ifaceType := CamelCase(iface.Name)
	kind := "Request"
	if m.Kind == KindEvent {
		kind = "Event"
	}
	fields := expandArgs(m.Args)

	// Descriptor.
	fmt.Fprintf(b, "var %s = &MsgDescriptor{\n", descName)
	fmt.Fprintf(b, "\tType:    %s,\n", ifaceType)
	fmt.Fprintf(b, "\tMsgType: %s,\n", kind)
	fmt.Fprintf(b, "\tOpcode:  %d,\n", m.Opcode)
	fmt.Fprintf(b, "\tName:    %q,\n", m.Name)
	if m.Destructor {
		fmt.Fprintf(b, "\tDestructor: true,\n")
	}
	fmt.Fprintf(b, "}\n\n")

	// Struct.
	fmt.Fprintf(b, "// %s is the %s.%s %s.\n", tn, iface.Name, m.Name, strings.ToLower(kind))
	fmt.Fprintf(b, "type %s struct {\n", tn)
	fmt.Fprintf(b, "\tmsgBase\n")
	for _, f := range fields {
		fmt.Fprintf(b, "\t%s %s `json:%q`\n", f.goName, f.goType, f.jsonName)
	}
	fmt.Fprintf(b, "}\n\n")

	emitCtor(b, tn, m, fields)
	emitParser(b, tn, descName, fields)
	emitBuilder(b, tn, fields)
	emitArgs(b, tn, fields)
}

func emitCtor(b *bytes.Buffer, tn string, m Msg, fields []genField) {
	fmt.Fprintf(b, "// New%s constructs the message with the given arguments.\n", tn)
	fmt.Fprintf(b, "func New%s(objectID uint32", tn)
	for _, f := range fields {
		fmt.Fprintf(b, ", %s %s", paramName(f.goName), f.goType)
	}
	fmt.Fprintf(b, ") *%s {\n", tn)
	fmt.Fprintf(b, "\tm := &%s{msgBase: newMsgBase(%s, objectID)}\n", tn, lowerFirst(tn)+"Desc")
	fdCount := 0
	for _, f := range fields {
		fmt.Fprintf(b, "\tm.%s = %s\n", f.goName, paramName(f.goName))
		if f.read == "FD" {
			fdCount++
		}
		if f.newIDInterface != "" {
			fmt.Fprintf(b, "\tm.created = append(m.created, NewObject{ID: m.%s, Type: %s})\n",
				f.goName, CamelCase(f.newIDInterface))
		}
	}
	if fdCount > 0 {
		fmt.Fprintf(b, "\tm.fds = %d\n", fdCount)
	}
	fmt.Fprintf(b, "\treturn m\n}\n\n")
}

func emitParser(b *bytes.Buffer, tn, descName string, fields []genField) {
	fmt.Fprintf(b, "func parse%s(raw *wire.RawMsg) (ParsedMessage, error) {\n", tn)
	fmt.Fprintf(b, "\tm := &%s{msgBase: newMsgBase(%s, raw.ObjectID)}\n", tn, descName)
	if len(fields) == 0 {
		fmt.Fprintf(b, "\treturn m, nil\n}\n\n")
		return
	}

	fmt.Fprintf(b, "\tr := wire.NewArgReader(raw)\n")
	fmt.Fprintf(b, "\tvar err error\n")
	for _, f := range fields {
		fmt.Fprintf(b, "\tif m.%s, err = r.%s(); err != nil {\n\t\treturn nil, err\n\t}\n", f.goName, f.read)
		if f.newIDInterface != "" {
			fmt.Fprintf(b, "\tm.created = append(m.created, NewObject{ID: m.%s, Type: %s})\n",
				f.goName, CamelCase(f.newIDInterface))
		}
	}
	fmt.Fprintf(b, "\tm.fds = r.ConsumedFDs()\n")
	fmt.Fprintf(b, "\treturn m, nil\n}\n\n")
}

func emitBuilder(b *bytes.Buffer, tn string, fields []genField) {
	fmt.Fprintf(b, "// Build frames the message for writing.\n")
	fmt.Fprintf(b, "func (m *%s) Build() *wire.RawMsg {\n", tn)
	if len(fields) == 0 {
		fmt.Fprintf(b, "\treturn wire.NewMsgBuilder().Build(m.objectID, m.desc.Opcode)\n}\n\n")
		return
	}

	fmt.Fprintf(b, "\tb := wire.NewMsgBuilder()\n")
	for _, f := range fields {
		fmt.Fprintf(b, "\tb.%s(m.%s)\n", f.write, f.goName)
	}
	fmt.Fprintf(b, "\treturn b.Build(m.objectID, m.desc.Opcode)\n}\n\n")
}

func emitArgs(b *bytes.Buffer, tn string, fields []genField) {
	fmt.Fprintf(b, "// Args returns the argument values keyed by protocol name.\n")
	fmt.Fprintf(b, "func (m *%s) Args() map[string]any {\n", tn)
	if len(fields) == 0 {
		fmt.Fprintf(b, "\treturn map[string]any{}\n}\n\n")
		return
	}

	fmt.Fprintf(b, "\treturn map[string]any{\n")
	for _, f := range fields {
		fmt.Fprintf(b, "\t\t%q: m.%s,\n", f.jsonName, f.goName)
	}
	fmt.Fprintf(b, "\t}\n}\n\n")
}

func emitInit(b *bytes.Buffer, p *Protocol) {
	fmt.Fprintf(b, "func init() {\n")
	for _, iface := range p.Interfaces {
		fmt.Fprintf(b, "\tregisterInterface(%q, %s)\n", iface.Name, CamelCase(iface.Name))
	}
	for _, iface := range p.Interfaces {
		for _, m := range iface.Msgs {
			reg := "registerRequest"
			if m.Kind == KindEvent {
				reg = "registerEvent"
			}
			fmt.Fprintf(b, "\t%s(%s, %d, parse%s)\n", reg, CamelCase(iface.Name), m.Opcode, typeName(iface.Name, m))
		}
	}
	fmt.Fprintf(b, "}\n")
}
