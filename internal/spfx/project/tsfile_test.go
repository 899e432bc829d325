package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const graphWebPart = `import { Version } from '@microsoft/sp-core-library';
import { BaseClientSideWebPart } from '@microsoft/sp-webpart-base';
import { MSGraphClient } from '@microsoft/sp-client-preview';
import * as strings from 'HelloWorldWebPartStrings';

export default class HelloWorldWebPart extends BaseClientSideWebPart<{}> {
  public render(): void {
    const client: MSGraphClient = this.context.serviceScope.consume(MSGraphClient.serviceKey);
    client.api('/me').get((error, user: any) => {
      this.domElement.innerHTML = user.displayName;
    });
  }
}
`

func TestTsFileImports(t *testing.T) {
	f := NewTsFile("/tmp/HelloWorldWebPart.ts", "./src/HelloWorldWebPart.ts", []byte(graphWebPart))

	imports, err := f.Imports()
	require.NoError(t, err)
	require.Len(t, imports, 4)

	assert.Equal(t, "@microsoft/sp-core-library", imports[0].Module)
	assert.Equal(t, []string{"Version"}, imports[0].Names)

	assert.Equal(t, "@microsoft/sp-client-preview", imports[2].Module)
	assert.Equal(t, []string{"MSGraphClient"}, imports[2].Names)
	assert.Equal(t, Position{Line: 3, Character: 1}, imports[2].Position)

	assert.Equal(t, "HelloWorldWebPartStrings", imports[3].Module)
	assert.Equal(t, "strings", imports[3].Default)
}

func TestTsFileFind(t *testing.T) {
	f := NewTsFile("/tmp/HelloWorldWebPart.ts", "./src/HelloWorldWebPart.ts", []byte(graphWebPart))

	matches, err := f.Find("call_expression", "MSGraphClient.serviceKey")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "this.context.serviceScope.consume(MSGraphClient.serviceKey)", matches[0].Text)
	assert.Equal(t, Position{Line: 8, Character: 35}, matches[0].Position)

	matches, err = f.Find("new_expression", "AadHttpClient")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestTsFileParsesTsx(t *testing.T) {
	source := `import * as React from 'react';
export default class Hello extends React.Component<{}, {}> {
  public render(): React.ReactElement<{}> {
    return <div className="hello">{new Date().toString()}</div>;
  }
}
`
	f := NewTsFile("/tmp/Hello.tsx", "./src/Hello.tsx", []byte(source))

	matches, err := f.Find("new_expression", "Date")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 4, matches[0].Position.Line)

	root, err := f.Root()
	require.NoError(t, err)
	assert.False(t, root.HasError())
}
