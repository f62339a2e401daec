package message

import (
	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-mtom/pkg/param"
	"github.com/sirosfoundation/go-mtom/pkg/schema"
)

// BuildBody serializes a parameter tree into the operation's body element
// according to the style/use matrix. The tree must already have been run
// through the attachment extractor: a raw AttachmentMarker at any depth is
// a precondition violation and fails fast rather than stringifying binary.
//
// Naming and namespace placement per style:
//
//	document: operation element in the target namespace (default xmlns),
//	          parameters as named children
//	rpc:      operation element prefixed with the target namespace,
//	          parameters unqualified
//
// Encoded use additionally annotates elements with xsi:type and, for
// rpc, declares the SOAP encodingStyle on the operation element. The
// annotation is emitted only where the type is inferable from the value
// itself, so scalars carry xsi:type while Object elements do not; struct
// type names would need schema information this builder never sees.
func BuildBody(op *schema.Operation, params *param.Object) (*etree.Element, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}

	var root *etree.Element
	switch op.Style {
	case schema.StyleDocument:
		root = etree.NewElement(op.Name)
		root.CreateAttr("xmlns", op.Namespace)
	case schema.StyleRPC:
		root = etree.NewElement("tns:" + op.Name)
		root.CreateAttr("xmlns:tns", op.Namespace)
	default:
		return nil, &schema.Error{Field: "style", Reason: "unknown value " + string(op.Style)}
	}

	switch op.Use {
	case schema.UseEncoded:
		root.CreateAttr("xmlns:xsi", NsXSI)
		root.CreateAttr("xmlns:xsd", NsXSD)
		if op.Style == schema.StyleRPC {
			root.CreateAttr("soap:encodingStyle", NsSOAPEncoding)
		}
	case schema.UseLiteral:
	default:
		return nil, &schema.Error{Field: "use", Reason: "unknown value " + string(op.Use)}
	}

	encoded := op.Use == schema.UseEncoded
	if params != nil {
		seen := make(map[string]struct{}, len(params.Fields))
		for _, f := range params.Fields {
			if f.Name == "" {
				return nil, param.Errorf(param.Path{}.String(), "parameter has an empty name")
			}
			if _, dup := seen[f.Name]; dup {
				return nil, param.Errorf(param.Path{}.Child(f.Name).String(), "duplicate parameter name")
			}
			seen[f.Name] = struct{}{}

			if err := appendValue(root, f.Name, f.Value, encoded, param.Path{}.Child(f.Name)); err != nil {
				return nil, err
			}
		}
	}

	return root, nil
}

// appendValue adds one named value under parent. Lists repeat the element
// name once per item; every other variant produces exactly one element.
func appendValue(parent *etree.Element, name string, v param.Value, encoded bool, path param.Path) error {
	switch val := v.(type) {
	case nil:
		return param.Errorf(path.String(), "value is nil")

	case param.Scalar:
		el := parent.CreateElement(name)
		el.SetText(val.Text())
		if encoded {
			el.CreateAttr("xsi:type", val.XSDType())
		}
		return nil

	case param.List:
		for i, item := range val {
			if err := appendValue(parent, name, item, encoded, path.Index(i)); err != nil {
				return err
			}
		}
		return nil

	case *param.Object:
		if val == nil {
			return param.Errorf(path.String(), "object is nil")
		}
		el := parent.CreateElement(name)
		seen := make(map[string]struct{}, len(val.Fields))
		for _, f := range val.Fields {
			if f.Name == "" {
				return param.Errorf(path.String(), "field has an empty name")
			}
			if _, dup := seen[f.Name]; dup {
				return param.Errorf(path.Child(f.Name).String(), "duplicate field name")
			}
			seen[f.Name] = struct{}{}
			if err := appendValue(el, f.Name, f.Value, encoded, path.Child(f.Name)); err != nil {
				return err
			}
		}
		return nil

	case *param.XOPInclude:
		el := parent.CreateElement(name)
		inc := el.CreateElement("xop:Include")
		inc.CreateAttr("xmlns:xop", NsXOP)
		inc.CreateAttr("href", val.Href)
		return nil

	case *param.AttachmentMarker:
		return param.Errorf(path.String(), "attachment marker reached the serializer unextracted")

	default:
		return param.Errorf(path.String(), "unsupported value type %T", v)
	}
}
